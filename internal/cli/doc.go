// Package cli contains the Bubbletea models behind catalogr's interactive
// surfaces: the main menu, the sign-in form, the configuration form and
// the product console.
//
// The console model is where the editing state machine lives. It pairs a
// modal mode (create, edit or delete) with a single draft record; the mode
// only ever changes through open and close, and a successful mutation
// always refreshes the product list before the modal goes away.
package cli
