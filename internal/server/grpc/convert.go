package grpc

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/common"
	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// timestamp maps a nil time to an unset field.
func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func fromTimestamp(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func contactFromPB(c *pb.Contact) *models.Contact {
	return &models.Contact{
		ID:               c.GetId(),
		Name:             c.GetName(),
		PhoneNumber:      c.GetPhoneNumber(),
		RelationshipTier: c.GetRelationshipTier(),
		Notes:            optional(c.GetNotes()),
	}
}

func contactToPB(c *models.Contact) *pb.Contact {
	return &pb.Contact{
		Id:               c.ID,
		Name:             c.Name,
		PhoneNumber:      c.PhoneNumber,
		RelationshipTier: c.RelationshipTier,
		Notes:            deref(c.Notes),
		UserId:           c.UserID,
		CreatedAt:        timestamppb.New(c.CreatedAt),
	}
}

func occasionFromPB(o *pb.Occasion) (*models.Occasion, error) {
	date, err := time.Parse(time.DateOnly, o.GetDate())
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrorValidation)
	}
	return &models.Occasion{
		ID:           o.GetId(),
		ContactID:    o.GetContactId(),
		OccasionType: o.GetOccasionType(),
		OccasionName: o.GetOccasionName(),
		Date:         date,
		Recurring:    o.GetRecurring(),
	}, nil
}

func occasionToPB(o *models.Occasion) *pb.Occasion {
	return &pb.Occasion{
		Id:           o.ID,
		ContactId:    o.ContactID,
		OccasionType: o.OccasionType,
		OccasionName: o.OccasionName,
		Date:         o.Date.Format(time.DateOnly),
		Recurring:    o.Recurring,
		UserId:       o.UserID,
		CreatedAt:    timestamppb.New(o.CreatedAt),
	}
}

func messageFromPB(m *pb.Message) *models.Message {
	return &models.Message{
		ContactID:   m.GetContactId(),
		OccasionID:  optional(m.GetOccasionId()),
		MessageText: m.GetMessageText(),
		Style:       m.GetStyle(),
		SentAt:      fromTimestamp(m.GetSentAt()),
		Status:      m.GetStatus(),
	}
}

func messageToPB(m *models.Message) *pb.Message {
	return &pb.Message{
		Id:          m.ID,
		ContactId:   m.ContactID,
		OccasionId:  deref(m.OccasionID),
		MessageText: m.MessageText,
		Style:       m.Style,
		SentAt:      timestamp(m.SentAt),
		Status:      m.Status,
		UserId:      m.UserID,
		CreatedAt:   timestamppb.New(m.CreatedAt),
	}
}
