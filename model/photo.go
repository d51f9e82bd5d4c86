package model

type ShowPhoto struct {
	Id         string `json:"id"`
	ShowId     string `json:"showId"`
	Url        string `json:"url"`
	Caption    string `json:"caption,omitempty"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt"`
	Approved   bool   `json:"approved"`
}
