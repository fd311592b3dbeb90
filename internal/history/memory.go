package history

import "github.com/balkashynov/dialr/internal/models"

// MemoryProvider keeps call records in memory. Used for --memory mode and tests.
type MemoryProvider struct {
	Records []models.CallRecord
	Saves   int
}

func NewMemoryProvider(records ...models.CallRecord) *MemoryProvider {
	return &MemoryProvider{Records: cloneRecords(records)}
}

func (p *MemoryProvider) Load() ([]models.CallRecord, error) {
	return cloneRecords(p.Records), nil
}

func (p *MemoryProvider) Save(records []models.CallRecord) error {
	p.Records = cloneRecords(records)
	p.Saves++
	return nil
}

func cloneRecords(records []models.CallRecord) []models.CallRecord {
	out := make([]models.CallRecord, len(records))
	copy(out, records)
	return out
}
