package entity

// BlogEventType names the mutation that produced a BlogEvent.
type BlogEventType string

const (
	BlogEventCreated BlogEventType = "blog.created"
	BlogEventUpdated BlogEventType = "blog.updated"
	BlogEventDeleted BlogEventType = "blog.deleted"
)
