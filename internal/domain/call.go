package domain

type CallType string

const (
	CallAudio CallType = "audio"
	CallVideo CallType = "video"
)
