package http

import (
	"repurpose-srv/internal/media"
)

type proxyImageReq struct {
	URL string
}

func (r proxyImageReq) toInput() media.ProxyImageInput {
	return media.ProxyImageInput{URL: r.URL}
}
