package entity

// Photo describes an object stored in the photo bucket.
type Photo struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}
