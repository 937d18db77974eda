package transfer

import "encoding/json"

type PostCreation struct {
	Content  string  `json:"content"`
	MediaURL *string `json:"media_url"`
}

// PostUpdate keeps "field omitted" and "field set to null" apart: a nil
// Content falls back to the stored value, while MediaURL is only replaced
// when the key was present in the request body (an explicit null clears it).
type PostUpdate struct {
	Content     *string
	MediaURL    *string
	MediaURLSet bool
}

func (u *PostUpdate) UnmarshalJSON(data []byte) error {
	var raw struct {
		Content  *string         `json:"content"`
		MediaURL json.RawMessage `json:"media_url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.Content = raw.Content
	if raw.MediaURL != nil {
		u.MediaURLSet = true
		if err := json.Unmarshal(raw.MediaURL, &u.MediaURL); err != nil {
			return err
		}
	}
	return nil
}
