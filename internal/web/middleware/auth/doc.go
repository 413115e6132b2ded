// Package auth provides the session middleware of the web application.
//
// The middleware reads the session cookie, loads the session data and
// reloads the user from the database. Active users are stored in
// fiber.Locals under the key used by the internal auth package, so
// handlers and templates can reach them:
//
//	app.Use(authmiddleware.New(db))
//
// Access control is left to the routes: the admin group is guarded by
// the internal auth package's RequireStaff.
package auth
