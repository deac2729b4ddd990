package dto

import (
	"encoding/json"
	"strings"
)

// FieldAliases maps alternate request field names to their canonical names.
// A canonical key already present in the payload wins over its alias.
var FieldAliases = map[string]string{
	"country":               "country_of_origin",
	"number_of_guests":      "number_of_attendees",
	"title":                 "activity_name",
	"start_time":            "date_time",
	"capacity":              "max_participants",
	"requires_registration": "requires_signup",
	"color_name":            "name",
	"color_code":            "hex",
	"conversation_history":  "history",
	"was_helpful":           "helpful",
}

// nestedObjectLists are fields whose array items are normalized too.
var nestedObjectLists = []string{"dress_colors", "color_palette", "guests"}

// NormalizeAliases rewrites a JSON object body to canonical field names.
// Non-object bodies are returned unchanged.
func NormalizeAliases(body []byte) ([]byte, error) {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return body, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if err := normalizeObject(fields); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func normalizeObject(fields map[string]json.RawMessage) error {
	for alias, canonical := range FieldAliases {
		value, ok := fields[alias]
		if !ok {
			continue
		}
		if _, exists := fields[canonical]; !exists {
			fields[canonical] = value
		}
		delete(fields, alias)
	}

	if err := combineNames(fields); err != nil {
		return err
	}

	for _, key := range nestedObjectLists {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			// not a list of objects; leave it for the decoder to reject
			continue
		}
		for _, item := range items {
			if err := normalizeObject(item); err != nil {
				return err
			}
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return err
		}
		fields[key] = encoded
	}
	return nil
}

func combineNames(fields map[string]json.RawMessage) error {
	first, hasFirst := fields["first_name"]
	last, hasLast := fields["last_name"]
	if !hasFirst && !hasLast {
		return nil
	}
	delete(fields, "first_name")
	delete(fields, "last_name")
	if _, exists := fields["full_name"]; exists {
		return nil
	}

	var parts []string
	for _, raw := range []json.RawMessage{first, last} {
		if raw == nil {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	encoded, err := json.Marshal(strings.Join(parts, " "))
	if err != nil {
		return err
	}
	fields["full_name"] = encoded
	return nil
}
