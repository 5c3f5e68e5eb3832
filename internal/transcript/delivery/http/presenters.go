package http

import (
	"repurpose-srv/internal/transcript"
)

type getTranscriptReq struct {
	URL string
}

func (r getTranscriptReq) toInput() transcript.GetTranscriptInput {
	return transcript.GetTranscriptInput{URL: r.URL}
}

type transcriptResp struct {
	Content        string   `json:"content"`
	Lang           string   `json:"lang,omitempty"`
	AvailableLangs []string `json:"availableLangs,omitempty"`
	FromCache      bool     `json:"fromCache,omitempty"`
}

func (h *handler) newTranscriptResp(o transcript.GetTranscriptOutput) transcriptResp {
	return transcriptResp{
		Content:        o.Transcript.Text(),
		Lang:           o.Transcript.Lang,
		AvailableLangs: o.Transcript.AvailableLangs,
		FromCache:      o.FromCache,
	}
}

type asyncJobResp struct {
	JobID string `json:"jobId"`
}

func (h *handler) newAsyncJobResp(o transcript.GetTranscriptOutput) asyncJobResp {
	return asyncJobResp{JobID: o.JobID}
}

type getJobStatusReq struct {
	JobID string
}

func (r getJobStatusReq) toInput() transcript.GetJobStatusInput {
	return transcript.GetJobStatusInput{JobID: r.JobID}
}

type jobStatusResp struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Content string `json:"content,omitempty"`
	Lang    string `json:"lang,omitempty"`
}

func (h *handler) newJobStatusResp(o transcript.GetJobStatusOutput) jobStatusResp {
	resp := jobStatusResp{
		Status: o.Status,
		Error:  o.Error,
	}
	if o.Transcript != nil {
		resp.Content = o.Transcript.Text()
		resp.Lang = o.Transcript.Lang
	}
	return resp
}
