package commands

import (
	"demochat/pkg/chat"
)

// Context contains all the context needed for command execution
type Context struct {
	Session    *chat.Session
	CurrentDir string
}

// NewContext creates a new command context
func NewContext(sess *chat.Session, cwd string) *Context {
	return &Context{
		Session:    sess,
		CurrentDir: cwd,
	}
}

// Busy reports whether the session is waiting for a reply.
func (c *Context) Busy() bool {
	return c.Session != nil && c.Session.Busy()
}
