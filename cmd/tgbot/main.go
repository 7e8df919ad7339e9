package main

import (
	"Arbor/internal/auth"
	"Arbor/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type Update struct {
	UpdateID      int            `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

// Admin bot: forwards pending arborist verification tickets to the admin
// chat and applies approve/reject decisions back through the repo.
func main() {
	token := os.Getenv("TOKEN_BOT")
	peerStr := os.Getenv("ADMIN_PEER_ID")
	if token == "" || peerStr == "" {
		log.Fatal("TOKEN_BOT or ADMIN_PEER_ID missing")
	}
	adminID, _ := strconv.ParseInt(peerStr, 10, 64)

	db := auth.InitDB()
	defer db.Close()
	repo := repo.NewPostgresDB(db)

	offset := 0
	lastPoll := time.Time{}
	for {
		if time.Since(lastPoll) > 30*time.Second {
			forwardPending(token, adminID, repo)
			lastPoll = time.Now()
		}

		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.CallbackQuery != nil {
				handleCallback(token, adminID, repo, u.CallbackQuery)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func forwardPending(token string, adminID int64, repo *repo.PostgresRepository) {
	tickets, err := repo.ListPendingVerificationTickets(context.Background())
	if err != nil {
		log.Println("ListPendingVerificationTickets error:", err)
		return
	}
	for _, t := range tickets {
		text := fmt.Sprintf("Verification ticket #%d\nUser: %d\nQualification: %s", t.ID, t.UserID, t.Qualification)
		if err := sendTicket(token, adminID, t.ID, text); err != nil {
			log.Println("sendTicket error:", err)
			continue
		}
		_ = repo.MarkVerificationTicketSent(context.Background(), t.ID)
	}
}

func handleCallback(token string, adminID int64, repo *repo.PostgresRepository, cb *CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat.ID != adminID {
		answerCallback(token, cb.ID, "Not allowed")
		return
	}
	parts := strings.Split(cb.Data, ":")
	if len(parts) != 2 {
		answerCallback(token, cb.ID, "Bad data")
		return
	}
	action := parts[0]
	id, _ := strconv.Atoi(parts[1])
	ticket, err := repo.GetVerificationTicket(context.Background(), id)
	if err != nil {
		answerCallback(token, cb.ID, "Ticket not found")
		return
	}

	switch action {
	case "approve":
		_ = repo.UpdateVerificationTicketStatus(context.Background(), id, "approved")
		until := time.Now().Add(365 * 24 * time.Hour)
		_ = repo.SetVerifiedUntil(context.Background(), ticket.UserID, until)
		answerCallback(token, cb.ID, "Approved")
		editMessage(token, cb.Message.Chat.ID, cb.Message.MessageID, fmt.Sprintf("✅ Approved ticket #%d", id))
	case "reject":
		_ = repo.UpdateVerificationTicketStatus(context.Background(), id, "rejected")
		answerCallback(token, cb.ID, "Rejected")
		editMessage(token, cb.Message.Chat.ID, cb.Message.MessageID, fmt.Sprintf("❌ Rejected ticket #%d", id))
	default:
		answerCallback(token, cb.ID, "Unknown action")
	}
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendTicket(token string, chatID int64, ticketID int, text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
		"reply_markup": map[string]any{
			"inline_keyboard": [][]map[string]string{{
				{"text": "Approve", "callback_data": fmt.Sprintf("approve:%d", ticketID)},
				{"text": "Reject", "callback_data": fmt.Sprintf("reject:%d", ticketID)},
			}},
		},
	}
	b, _ := json.Marshal(payload)
	_, err := http.Post(url, "application/json", strings.NewReader(string(b)))
	return err
}

func answerCallback(token, id, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/answerCallbackQuery", token)
	payload := map[string]any{"callback_query_id": id, "text": text}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}

func editMessage(token string, chatID int64, messageID int, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/editMessageText", token)
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
