// Package database persists the session and configuration in a local
// bbolt file under the user's config directory. Values are stored as JSON
// so the on-disk format stays inspectable.
package database
