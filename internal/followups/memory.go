package followups

import "github.com/balkashynov/dialr/internal/models"

// MemoryProvider keeps follow-ups in memory
type MemoryProvider struct {
	Items []models.FollowUp
	Saves int
}

func NewMemoryProvider(items ...models.FollowUp) *MemoryProvider {
	return &MemoryProvider{Items: append([]models.FollowUp(nil), items...)}
}

func (p *MemoryProvider) Load() ([]models.FollowUp, error) {
	return append([]models.FollowUp(nil), p.Items...), nil
}

func (p *MemoryProvider) Save(items []models.FollowUp) error {
	p.Items = append([]models.FollowUp(nil), items...)
	p.Saves++
	return nil
}
