package ie

// StatBlock is the host-owned stat block of one character
type StatBlock struct {
	ID        string       `json:"id"`
	Values    map[Stat]int `json:"values"`
	CreatedAt int64        `json:"created_at"`
	UpdatedAt int64        `json:"updated_at"`
}

// NewStatBlock returns an empty stat block
func NewStatBlock(id string) *StatBlock {
	return &StatBlock{
		ID:     id,
		Values: make(map[Stat]int),
	}
}

// Stat returns a stat value; unset stats read as 0
func (b *StatBlock) Stat(id Stat) int {
	return b.Values[id]
}

// SetStat writes a stat value
func (b *StatBlock) SetStat(id Stat, value int) {
	if b.Values == nil {
		b.Values = make(map[Stat]int)
	}
	b.Values[id] = value
}
