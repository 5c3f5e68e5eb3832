package http

import (
	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/model"
)

type analyzeProfileReq struct {
	Username   string       `json:"username" binding:"required"`
	ProfileURL string       `json:"profileUrl"`
	TopReels   []model.Reel `json:"topReels"`
	UserID     string       `json:"userId"`
}

func (r analyzeProfileReq) toInput() analytics.AnalyzeInput {
	return analytics.AnalyzeInput{
		Username:   r.Username,
		ProfileURL: r.ProfileURL,
		UserID:     r.UserID,
		Reels:      r.TopReels,
	}
}

type getProfileReportReq struct {
	Username string
}

func (r getProfileReportReq) toInput() analytics.GetReportInput {
	return analytics.GetReportInput{
		Username: r.Username,
	}
}
