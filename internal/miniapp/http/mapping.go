package http

import (
	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
)

func toProfile(u domain.User) miniappsdk.Profile {
	return miniappsdk.Profile{
		ID:         u.ID,
		TgID:       u.TgID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Age:        u.Age,
		About:      u.About,
		Drinks:     u.Drinks,
		Topics:     u.Topics,
		Location:   u.Location,
		Balance:    u.Balance,
		Subscribed: u.Subscribed,
	}
}

func toInvite(inv domain.Invite) miniappsdk.Invite {
	return miniappsdk.Invite{
		ID:        inv.ID,
		FromTgID:  inv.FromTgID,
		ToTgID:    inv.ToTgID,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}
}

func toMessage(m domain.Message) miniappsdk.Message {
	return miniappsdk.Message{
		ID:        m.ID,
		FromTgID:  m.FromTgID,
		ToTgID:    m.ToTgID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
