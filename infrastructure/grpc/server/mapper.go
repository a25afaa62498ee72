package server

import (
	"fmt"

	pb "timebank/api/v1"
	"timebank/domain"

	"github.com/samber/lo"
)

func toPbSlots(slots []domain.Slot) []pb.Slot {
	return lo.Map(slots, func(s domain.Slot, _ int) pb.Slot {
		return pb.Slot{Day: string(s.Day), StartTime: s.StartTime.String(), EndTime: s.EndTime.String()}
	})
}

// fromPbSlots parses the text form; a malformed slot is a caller error.
func fromPbSlots(slots []pb.Slot) ([]domain.Slot, error) {
	result := make([]domain.Slot, 0, len(slots))
	for i, s := range slots {
		day, err := domain.ParseWeekday(s.Day)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		start, err := domain.ParseTimeOfDay(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		end, err := domain.ParseTimeOfDay(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		result = append(result, domain.Slot{Day: day, StartTime: start, EndTime: end})
	}
	return result, nil
}

func toPbProfile(p domain.Profile) *pb.Profile {
	return &pb.Profile{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Email:     p.Email,
		PhotoURL:  p.PhotoURL,
		IDCardURL: p.IDCardURL,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

func toPbMessage(m domain.Message) *pb.Message {
	message := &pb.Message{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Type:      string(m.Type()),
		Timestamp: m.Timestamp,
	}
	switch p := m.Payload().(type) {
	case domain.TextPayload:
		message.Text = p.Text
	case domain.VoicePayload:
		message.AudioData = p.AudioData
	}
	return message
}
