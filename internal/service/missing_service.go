package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pepocho/presupuesto-mix/internal/ai"
	"github.com/pepocho/presupuesto-mix/internal/models"
	"github.com/pepocho/presupuesto-mix/internal/notify"
	"github.com/pepocho/presupuesto-mix/internal/repository"
)

var (
	ErrMissingName      = errors.New("item name is required")
	ErrMissingRequester = errors.New("requester is required")
	ErrVoiceNotParsed   = errors.New("voice command could not be understood")
)

// MissingItemService manages the "¿faltó algo?" list: validation, the
// persistent log, voice-order intake and the outbound notification.
type MissingItemService struct {
	store    *repository.MissingItemStore
	notifier notify.Notifier
	aiClient ai.Client
	phone    string
	logger   *slog.Logger
}

// NewMissingItemService wires the store, notifier and AI parser together.
func NewMissingItemService(store *repository.MissingItemStore, notifier notify.Notifier, aiClient ai.Client, phone string, logger *slog.Logger) *MissingItemService {
	return &MissingItemService{
		store:    store,
		notifier: notifier,
		aiClient: aiClient,
		phone:    phone,
		logger:   logger,
	}
}

// List returns all reported items.
func (s *MissingItemService) List() []models.MissingItem {
	return s.store.List()
}

// Add validates and records one item, then notifies the group in the
// background. A notification failure never fails the save.
func (s *MissingItemService) Add(requester, name, quantity, price string) (models.MissingItem, error) {
	if strings.TrimSpace(name) == "" {
		return models.MissingItem{}, ErrMissingName
	}
	if strings.TrimSpace(requester) == "" {
		return models.MissingItem{}, ErrMissingRequester
	}

	item := models.MissingItem{
		ID:        uuid.New().String(),
		Requester: requester,
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		Timestamp: time.Now().UTC(),
	}

	if err := s.store.Append(item); err != nil {
		return models.MissingItem{}, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.NotifyNewItem(ctx, item); err != nil {
			s.logger.Warn("missing item notification failed", "item", item.Name, "error", err)
		}
	}()

	return item, nil
}

// AddFromVoice parses a transcript and records every extracted item.
// Parsing happens before any write so a failed transcript applies nothing.
func (s *MissingItemService) AddFromVoice(ctx context.Context, transcript string) ([]models.MissingItem, error) {
	order, err := s.aiClient.ParseVoiceOrder(ctx, transcript)
	if err != nil {
		s.logger.Warn("voice order parse failed", "error", err)
		return nil, ErrVoiceNotParsed
	}
	if len(order.Items) == 0 {
		return nil, ErrVoiceNotParsed
	}

	added := make([]models.MissingItem, 0, len(order.Items))
	for _, v := range order.Items {
		qty := strconv.FormatFloat(v.Quantity, 'f', -1, 64)
		item, err := s.Add(v.Requester, v.Name, qty, "")
		if err != nil {
			return added, err
		}
		added = append(added, item)
	}
	return added, nil
}

// Clear wipes the whole list.
func (s *MissingItemService) Clear() error {
	return s.store.Clear()
}

// WhatsAppLink builds the send-to-group link for the current list.
func (s *MissingItemService) WhatsAppLink() (string, error) {
	items := s.store.List()
	if len(items) == 0 {
		return "", errors.New("no missing items to send")
	}
	msg := notify.BuildWhatsAppMessage(items, time.Now())
	return notify.WhatsAppLink(s.phone, msg), nil
}
