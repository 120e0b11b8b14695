package client

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timeFromPB keeps an unset timestamp as the zero time rather than the epoch.
func timeFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func sessionFromPB(r *pb.SessionResponse) *models.Session {
	return &models.Session{
		AccessToken:  r.GetAccessToken(),
		RefreshToken: r.GetRefreshToken(),
		ExpiresAt:    timeFromPB(r.GetExpiresAt()),
		Identity:     models.Identity{UserID: r.GetUser().GetId(), Email: r.GetUser().GetEmail()},
	}
}

func contactToPB(c models.Contact) *pb.Contact {
	return &pb.Contact{
		Id:               c.ID,
		Name:             c.Name,
		PhoneNumber:      c.PhoneNumber,
		RelationshipTier: string(c.RelationshipTier),
		Notes:            c.Notes,
	}
}

func contactFromPB(c *pb.Contact) models.Contact {
	return models.Contact{
		ID:               c.GetId(),
		Name:             c.GetName(),
		PhoneNumber:      c.GetPhoneNumber(),
		RelationshipTier: models.RelationshipTier(c.GetRelationshipTier()),
		Notes:            c.GetNotes(),
		UserID:           c.GetUserId(),
		CreatedAt:        timeFromPB(c.GetCreatedAt()),
	}
}

func occasionToPB(o models.Occasion) *pb.Occasion {
	return &pb.Occasion{
		Id:           o.ID,
		ContactId:    o.ContactID,
		OccasionType: string(o.OccasionType),
		OccasionName: o.OccasionName,
		Date:         o.Date.Format(models.DateLayout),
		Recurring:    o.Recurring,
	}
}

func occasionFromPB(o *pb.Occasion) (models.Occasion, error) {
	date, err := time.Parse(models.DateLayout, o.GetDate())
	if err != nil {
		return models.Occasion{}, fmt.Errorf("occasion %s: bad date %q: %w", o.GetId(), o.GetDate(), err)
	}
	return models.Occasion{
		ID:           o.GetId(),
		ContactID:    o.GetContactId(),
		OccasionType: models.OccasionType(o.GetOccasionType()),
		OccasionName: o.GetOccasionName(),
		Date:         date,
		Recurring:    o.GetRecurring(),
		UserID:       o.GetUserId(),
		CreatedAt:    timeFromPB(o.GetCreatedAt()),
	}, nil
}

func messageToPB(m models.Message) *pb.Message {
	out := &pb.Message{
		ContactId:   m.ContactID,
		OccasionId:  m.OccasionID,
		MessageText: m.MessageText,
		Style:       string(m.Style),
		Status:      string(m.Status),
	}
	if m.SentAt != nil {
		out.SentAt = timestamppb.New(*m.SentAt)
	}
	return out
}

func messageFromPB(m *pb.Message) models.Message {
	out := models.Message{
		ID:          m.GetId(),
		ContactID:   m.GetContactId(),
		OccasionID:  m.GetOccasionId(),
		MessageText: m.GetMessageText(),
		Style:       models.MessageStyle(m.GetStyle()),
		Status:      models.MessageStatus(m.GetStatus()),
		UserID:      m.GetUserId(),
		CreatedAt:   timeFromPB(m.GetCreatedAt()),
	}
	if ts := m.GetSentAt(); ts != nil {
		t := ts.AsTime()
		out.SentAt = &t
	}
	return out
}
