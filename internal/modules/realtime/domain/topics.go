package domain

import "strings"

const (
	SystemEntity = "system"
	HoursEntity  = "hours"

	TopicSystemConnected = SystemEntity + ".connected"
	TopicSystemPong      = SystemEntity + ".pong"
	TopicSystemError     = SystemEntity + ".error"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionError     = "error"
	ActionStatus    = "status"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"

	statusSuffix = "." + ActionStatus
)

// StatusTopic returns the live badge topic of a listing rendered in one display language
// ("hours.<listingId>.status.<lang>").
func StatusTopic(listingID, lang string) string {
	id := strings.TrimSpace(listingID)
	lang = strings.ToLower(strings.TrimSpace(lang))
	if id == "" || lang == "" || strings.Contains(lang, ".") {
		return ""
	}
	return HoursEntity + "." + id + statusSuffix + "." + lang
}

// ParseStatusTopic splits a badge topic into its listing id and display language.
func ParseStatusTopic(topic string) (listingID, lang string, ok bool) {
	rest, found := strings.CutPrefix(topic, HoursEntity+".")
	if !found {
		return "", "", false
	}
	cut := strings.LastIndex(rest, statusSuffix+".")
	if cut <= 0 {
		return "", "", false
	}
	listingID = rest[:cut]
	lang = rest[cut+len(statusSuffix)+1:]
	if strings.TrimSpace(listingID) == "" || lang == "" || strings.Contains(lang, ".") {
		return "", "", false
	}
	return listingID, lang, true
}
