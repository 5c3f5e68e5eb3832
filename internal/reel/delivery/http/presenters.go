package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/internal/reel"
	"repurpose-srv/pkg/paginator"
	"repurpose-srv/pkg/util"
)

type getTopReelsReq struct {
	URL string
}

func (r getTopReelsReq) toInput() reel.GetTopReelsInput {
	return reel.GetTopReelsInput{ProfileURL: r.URL}
}

type topReelsResp struct {
	Username      string       `json:"username"`
	ProfileURL    string       `json:"profileUrl"`
	TopReels      []model.Reel `json:"topReels"`
	TotalAnalyzed int          `json:"totalAnalyzed"`
}

func (h *handler) newTopReelsResp(o reel.GetTopReelsOutput) topReelsResp {
	return topReelsResp{
		Username:      o.Username,
		ProfileURL:    o.ProfileURL,
		TopReels:      o.TopReels,
		TotalAnalyzed: o.TotalAnalyzed,
	}
}

type getReelMetadataReq struct {
	URL string
}

func (r getReelMetadataReq) toInput() reel.GetReelMetadataInput {
	return reel.GetReelMetadataInput{URL: r.URL}
}

type saveReelReq struct {
	ReelID         string   `json:"reelId"`
	URL            string   `json:"url" binding:"required"`
	Caption        string   `json:"caption"`
	Thumbnail      string   `json:"thumbnail"`
	LikesCount     int      `json:"likesCount"`
	ViewsCount     int      `json:"viewsCount"`
	CommentsCount  int      `json:"commentsCount"`
	Hashtags       []string `json:"hashtags"`
	MusicTitle     string   `json:"musicTitle"`
	PostedTime     string   `json:"postedTime"`
	Username       string   `json:"username"`
	Transcript     string   `json:"transcript"`
	TranscriptLang string   `json:"transcriptLang"`
}

func (r saveReelReq) toInput() reel.SaveReelInput {
	return reel.SaveReelInput{
		ReelID:         r.ReelID,
		URL:            r.URL,
		Caption:        r.Caption,
		Thumbnail:      r.Thumbnail,
		LikesCount:     r.LikesCount,
		ViewsCount:     r.ViewsCount,
		CommentsCount:  r.CommentsCount,
		Hashtags:       r.Hashtags,
		MusicTitle:     r.MusicTitle,
		PostedTime:     r.PostedTime,
		Username:       r.Username,
		Transcript:     r.Transcript,
		TranscriptLang: r.TranscriptLang,
	}
}

type savedReelResp struct {
	ID             string   `json:"id"`
	ReelID         string   `json:"reelId"`
	URL            string   `json:"url"`
	Caption        string   `json:"caption"`
	Thumbnail      string   `json:"thumbnail"`
	LikesCount     int      `json:"likesCount"`
	ViewsCount     int      `json:"viewsCount"`
	CommentsCount  int      `json:"commentsCount"`
	Hashtags       []string `json:"hashtags"`
	MusicTitle     string   `json:"musicTitle"`
	PostedTime     string   `json:"postedTime"`
	Username       string   `json:"username"`
	Transcript     string   `json:"transcript,omitempty"`
	TranscriptLang string   `json:"transcriptLang,omitempty"`
	CreatedAt      int64    `json:"createdAt"`
}

func (h *handler) newSavedReelResp(o model.SavedReel) savedReelResp {
	return savedReelResp{
		ID:             o.ID,
		ReelID:         o.ReelID,
		URL:            o.URL,
		Caption:        o.Caption,
		Thumbnail:      o.Thumbnail,
		LikesCount:     o.LikesCount,
		ViewsCount:     o.ViewsCount,
		CommentsCount:  o.CommentsCount,
		Hashtags:       o.Hashtags,
		MusicTitle:     o.MusicTitle,
		PostedTime:     o.PostedTime,
		Username:       o.Username,
		Transcript:     o.Transcript,
		TranscriptLang: o.TranscriptLang,
		CreatedAt:      o.CreatedAt.UnixMilli(),
	}
}

type listSavedReelsReq struct {
	PagQuery paginator.PaginateQuery
}

func (r listSavedReelsReq) toInput() reel.ListSavedReelsInput {
	return reel.ListSavedReelsInput{PagQuery: r.PagQuery}
}

type listSavedReelsResp struct {
	Reels      []savedReelResp             `json:"reels"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func (h *handler) newListSavedReelsResp(o reel.ListSavedReelsOutput) listSavedReelsResp {
	return listSavedReelsResp{
		Reels:      util.MapSlice(o.Reels, h.newSavedReelResp),
		Pagination: o.Paginator.ToResponse(),
	}
}

type deleteSavedReelReq struct {
	ID string
}

func (r deleteSavedReelReq) toInput() reel.DeleteSavedReelInput {
	return reel.DeleteSavedReelInput{ID: r.ID}
}

type deleteSavedReelResp struct {
	Message string `json:"message"`
}
