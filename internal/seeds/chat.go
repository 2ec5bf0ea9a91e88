package seeds

import (
	"time"

	"github.com/afrilink/platform_be/internal/models"
)

func Conversations() []models.Conversation {
	return []models.Conversation{
		{
			ID:          "1",
			Name:        "Kwame Asante",
			LastMessage: "Perfect! When can you start? And what's your estimated timeline for the first milestone?",
			Timestamp:   "11:00 AM",
			Unread:      2,
			Online:      true,
			Project:     "E-commerce Platform",
		},
		{
			ID:          "2",
			Name:        "Fatima Okonkwo",
			LastMessage: "The designs look great! Just a few minor adjustments needed.",
			Timestamp:   "Yesterday",
			Online:      false,
			Project:     "Mobile App UI/UX",
		},
		{
			ID:          "3",
			Name:        "Sarah Mwangi",
			LastMessage: "Thanks for the quick response. Let me review and get back to you.",
			Timestamp:   "2 days ago",
			Online:      true,
			Project:     "WordPress Website",
		},
	}
}

// ChatHistory is the thread with Kwame (conversation "1") as seen by Amara.
func ChatHistory() []models.ChatMessage {
	at := func(hh, mm int) time.Time {
		return time.Date(2024, time.January, 15, hh, mm, 0, 0, time.UTC)
	}
	amara := func(id, text string, ts time.Time) models.ChatMessage {
		return models.ChatMessage{ID: id, ConversationID: "1", SenderID: "1", SenderName: "Amara Okafor", Message: text, Timestamp: ts, IsMe: true}
	}
	kwame := func(id, text string, ts time.Time) models.ChatMessage {
		return models.ChatMessage{ID: id, ConversationID: "1", SenderID: models.CounterpartID("1"), SenderName: "Kwame Asante", Message: text, Timestamp: ts}
	}

	return []models.ChatMessage{
		amara("1", "Hi Kwame! I've reviewed the project requirements and I'm excited to work on your e-commerce platform.", at(10, 30)),
		kwame("2", "Great! I'm glad you're interested. Do you have any questions about the technical requirements?", at(10, 35)),
		amara("3", "Yes, I wanted to clarify the payment integration. Are you planning to use Stripe or do you prefer a local payment gateway like Paystack?", at(10, 40)),
		kwame("4", "Paystack would be perfect since we're targeting the African market. Can you also integrate mobile money payments?", at(10, 45)),
		amara("5", "Absolutely! Paystack supports mobile money for Ghana, Nigeria, and several other African countries. I'll include that in the implementation.", at(10, 50)),
		kwame("6", "Perfect! When can you start? And what's your estimated timeline for the first milestone?", at(11, 0)),
		amara("7", "I can start immediately. For the first milestone (user authentication and basic product catalog), I estimate 2-3 weeks.", at(11, 5)),
	}
}
