// Package manager runs tasks and announces each lifecycle phase through an
// events.Registry. Plugins hook into the manager by registering handlers
// for the well-known event types; the manager never calls them directly.
package manager
