package services

import (
	"context"
	"fmt"
	"time"

	"nutritrack/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DrinkOption is a quick-add preset.
type DrinkOption struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	DefaultML int    `json:"default_ml"`
}

var DrinkOptions = []DrinkOption{
	{ID: "water-glass", Type: "water", Name: "Verre d'eau", Emoji: "💧", DefaultML: 250},
	{ID: "water-bottle", Type: "water", Name: "Bouteille", Emoji: "🍶", DefaultML: 500},
	{ID: "water-large", Type: "water", Name: "Grande bouteille", Emoji: "🧴", DefaultML: 1000},
	{ID: "coffee", Type: "coffee", Name: "Café", Emoji: "☕", DefaultML: 150},
	{ID: "espresso", Type: "coffee", Name: "Espresso", Emoji: "☕", DefaultML: 30},
	{ID: "tea", Type: "tea", Name: "Thé", Emoji: "🍵", DefaultML: 200},
	{ID: "juice", Type: "juice", Name: "Jus", Emoji: "🧃", DefaultML: 250},
	{ID: "milk", Type: "milk", Name: "Lait", Emoji: "🥛", DefaultML: 250},
	{ID: "soda", Type: "soda", Name: "Soda", Emoji: "🥤", DefaultML: 330},
}

func findDrinkOption(id string) (DrinkOption, bool) {
	for _, o := range DrinkOptions {
		if o.ID == id {
			return o, true
		}
	}
	return DrinkOption{}, false
}

func defaultOptionForType(drinkType string) DrinkOption {
	for _, o := range DrinkOptions {
		if o.Type == drinkType {
			return o
		}
	}
	return DrinkOptions[0]
}

type HydrationService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewHydrationService(db *gorm.DB, hub *RealtimeHub) *HydrationService {
	return &HydrationService{db: db, hub: hub}
}

// AddEntry logs one drink. `now` supplies the entry's date and display time.
func (s *HydrationService) AddEntry(ctx context.Context, userID uint, drinkType string, amountML int, customName string, now time.Time) (*models.HydrationEntry, error) {
	if amountML <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	opt := defaultOptionForType(drinkType)
	name := customName
	if name == "" {
		name = opt.Name
	}

	entry := &models.HydrationEntry{
		UserID:    userID,
		DrinkType: drinkType,
		Name:      name,
		Emoji:     opt.Emoji,
		AmountML:  amountML,
		Date:      dayStart(now),
		Time:      now.Format("15:04"),
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}

	s.broadcastDayTotal(ctx, userID, entry.Date)
	return entry, nil
}

// QuickAdd logs a preset drink by option ID.
func (s *HydrationService) QuickAdd(ctx context.Context, userID uint, optionID string, now time.Time) (*models.HydrationEntry, error) {
	opt, ok := findDrinkOption(optionID)
	if !ok {
		return nil, fmt.Errorf("unknown drink option %q", optionID)
	}
	return s.AddEntry(ctx, userID, opt.Type, opt.DefaultML, opt.Name, now)
}

func (s *HydrationService) ListByDate(ctx context.Context, userID uint, date time.Time) ([]models.HydrationEntry, error) {
	var entries []models.HydrationEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// DailyTotal sums millilitres logged on one date.
func (s *HydrationService) DailyTotal(ctx context.Context, userID uint, date time.Time) (int, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.HydrationEntry{}).
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return int(total), err
}

func (s *HydrationService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	var entry models.HydrationEntry
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return err
	}

	s.broadcastDayTotal(ctx, userID, entry.Date)
	return nil
}

// broadcastDayTotal pushes the day's running total to connected clients, the
// way the mobile app expects live hydration updates.
func (s *HydrationService) broadcastDayTotal(ctx context.Context, userID uint, date time.Time) {
	if s.hub == nil {
		return
	}
	total, err := s.DailyTotal(ctx, userID, date)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("hydration total for broadcast failed")
		return
	}
	s.hub.Broadcast(userID, Event{
		Type: "hydration",
		Data: map[string]any{
			"date":     date.Format("2006-01-02"),
			"total_ml": total,
		},
	})
}
