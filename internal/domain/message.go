package domain

import "time"

// Message is one relayed chat message. It lives only for the duration of a
// single relay; persistence happens in the REST layer before we see it.
type Message struct {
	ChatID      string    `json:"chatId"`
	SenderID    UserID    `json:"senderId"`
	RecipientID UserID    `json:"recipientId"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notification accompanies every relayed message. Never stored here.
type Notification struct {
	SenderID UserID    `json:"senderId"`
	IsRead   bool      `json:"isRead"`
	Date     time.Time `json:"date"`
}

func NewNotification(sender UserID, at time.Time) Notification {
	return Notification{SenderID: sender, IsRead: false, Date: at}
}
