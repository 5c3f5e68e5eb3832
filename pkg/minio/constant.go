package minio

import "time"

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second

	// DispositionInline renders the file in the browser.
	DispositionInline = "inline"
	// DispositionAttachment forces a download.
	DispositionAttachment = "attachment"

	// MethodGET is the HTTP method for presigned download URLs.
	MethodGET = "GET"
	// MethodPUT is the HTTP method for presigned upload URLs.
	MethodPUT = "PUT"
)
