package entity

import "time"

// SettingVotingOpen es la clave del interruptor global de votación.
const SettingVotingOpen = "voting_open"

// Setting es un par clave/valor durable. El valor siempre es texto;
// los booleanos se codifican como "true"/"false".
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Bool interpreta el valor como booleano ("true" → true, todo lo demás → false).
func (s *Setting) Bool() bool {
	return s != nil && s.Value == "true"
}
