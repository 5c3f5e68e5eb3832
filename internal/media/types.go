package media

type ProxyImageInput struct {
	URL string
}

// ProxyImageOutput carries the presigned download URL of the cached copy.
type ProxyImageOutput struct {
	RedirectURL string
}
