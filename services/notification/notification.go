package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// ActivityMessageBuilder dựng thông báo hoạt động công trường cho kênh websocket
type ActivityMessageBuilder struct {
	kind        string
	projectName string
	detail      string
	amount      int64
}

func NewActivityMessageBuilder(kind, projectName, detail string, amount int64) *ActivityMessageBuilder {
	return &ActivityMessageBuilder{
		kind:        kind,
		projectName: projectName,
		detail:      detail,
		amount:      amount,
	}
}

func (b *ActivityMessageBuilder) Build() string {
	if b.amount > 0 {
		return fmt.Sprintf("🔔 [%s] %s - %s: %d VND", b.kind, b.projectName, b.detail, b.amount)
	}
	return fmt.Sprintf("🔔 [%s] %s - %s", b.kind, b.projectName, b.detail)
}
