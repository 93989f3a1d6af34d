// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// ConfigEntry is the predicate function for configentry builders.
type ConfigEntry func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)
