package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/ksoltys/teagarden/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	playerRepo      domain.PlayerRepository
	teaCardRepo     domain.TeaCardRepository
	userCardRepo    domain.UserCardRepository
	questRepo       domain.QuestRepository
	achievementRepo domain.AchievementRepository
	eventRepo       domain.WeeklyEventRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(
	playerRepo domain.PlayerRepository,
	teaCardRepo domain.TeaCardRepository,
	userCardRepo domain.UserCardRepository,
	questRepo domain.QuestRepository,
	achievementRepo domain.AchievementRepository,
	eventRepo domain.WeeklyEventRepository,
) *Seeder {
	return &Seeder{
		playerRepo:      playerRepo,
		teaCardRepo:     teaCardRepo,
		userCardRepo:    userCardRepo,
		questRepo:       questRepo,
		achievementRepo: achievementRepo,
		eventRepo:       eventRepo,
	}
}

// SeedAll seeds every table in dependency order
func (s *Seeder) SeedAll() error {
	if err := s.SeedTeaCards(); err != nil {
		return err
	}
	player, err := s.SeedPlayer()
	if err != nil {
		return err
	}
	if err := s.SeedUserCards(player); err != nil {
		return err
	}
	if err := s.SeedQuests(); err != nil {
		return err
	}
	if err := s.SeedAchievements(player); err != nil {
		return err
	}
	return s.SeedWeeklyEvents()
}

// SeedTeaCards seeds the card catalog
func (s *Seeder) SeedTeaCards() error {
	log.Printf("Seeding tea cards...")

	cards := []*domain.TeaCard{
		{
			Name:               "Dragon Well Supreme",
			Description:        "A legendary green tea with unmatched clarity and focus enhancement.",
			Rarity:             "legendary",
			ImageURL:           "https://images.unsplash.com/photo-1544787219-7f47ccb76574",
			Strength:           7,
			Freshness:          10,
			Aroma:              9,
			Abilities:          domain.StringList{"Focus", "Clarity"},
			BrewingTime:        "2-3 min",
			BrewingTemperature: "80C",
		},
		{
			Name:               "Ceremonial Matcha",
			Description:        "Traditional ceremonial matcha that brings inner peace and tranquility.",
			Rarity:             "epic",
			ImageURL:           "https://images.unsplash.com/photo-1515823064-d6e0c04616a7",
			Strength:           8,
			Freshness:          9,
			Aroma:              8,
			Abilities:          domain.StringList{"Calm", "Balance"},
			BrewingTime:        "1-2 min",
			BrewingTemperature: "75C",
		},
		{
			Name:               "Earl Grey Supreme",
			Description:        "A premium Earl Grey blend with bergamot that energizes the spirit.",
			Rarity:             "rare",
			ImageURL:           "https://images.unsplash.com/photo-1597318150924-b1ebb48e4c66",
			Strength:           6,
			Freshness:          7,
			Aroma:              10,
			Abilities:          domain.StringList{"Energy"},
			BrewingTime:        "3-5 min",
			BrewingTemperature: "95C",
		},
		{
			Name:               "Golden Chamomile",
			Description:        "Soothing chamomile flowers that promote restful sleep and relaxation.",
			Rarity:             "uncommon",
			ImageURL:           "https://images.unsplash.com/photo-1597318150924-b1ebb48e4c66",
			Strength:           3,
			Freshness:          8,
			Aroma:              7,
			Abilities:          domain.StringList{"Rest"},
			BrewingTime:        "5 min",
			BrewingTemperature: "100C",
		},
		{
			Name:               "Garden Green",
			Description:        "A simple yet refreshing green tea that supports overall health.",
			Rarity:             "common",
			ImageURL:           "https://images.unsplash.com/photo-1556679343-c7306c1976bc",
			Strength:           4,
			Freshness:          8,
			Aroma:              5,
			Abilities:          domain.StringList{"Health"},
			BrewingTime:        "2-3 min",
			BrewingTemperature: "80C",
		},
		{
			Name:               "Morning Blend",
			Description:        "A robust morning tea blend perfect for starting the day.",
			Rarity:             "common",
			ImageURL:           "https://images.unsplash.com/photo-1559056199-641a0ac8b55e",
			Strength:           8,
			Freshness:          6,
			Aroma:              6,
			Abilities:          domain.StringList{"Energy"},
			BrewingTime:        "3-4 min",
			BrewingTemperature: "95C",
		},
	}

	for _, card := range cards {
		existing, err := s.teaCardRepo.GetByName(card.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.teaCardRepo.Create(card); err != nil {
			return err
		}
	}

	log.Printf("Tea card seeding completed")
	return nil
}

// SeedPlayer seeds the starter player and returns it
func (s *Seeder) SeedPlayer() (*domain.Player, error) {
	log.Printf("Seeding starter player...")

	existing, err := s.playerRepo.GetByUsername("player")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("Starter player already exists, skipping.")
		return existing, nil
	}

	hash := sha256.Sum256([]byte("password"))
	starter := &domain.Player{
		Username:   "player",
		Password:   hex.EncodeToString(hash[:]),
		Level:      1,
		Experience: 0,
		Coins:      100,
	}
	if err := s.playerRepo.Create(starter); err != nil {
		return nil, err
	}
	return starter, nil
}

// SeedUserCards grants the starter player a small collection
func (s *Seeder) SeedUserCards(player *domain.Player) error {
	log.Printf("Seeding starter collection...")

	names := []string{"Garden Green", "Morning Blend"}
	for _, name := range names {
		card, err := s.teaCardRepo.GetByName(name)
		if err != nil {
			return err
		}
		if card == nil {
			continue
		}
		existing, err := s.userCardRepo.GetByPlayerAndCard(player.ID, card.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.userCardRepo.Create(&domain.UserCard{
			PlayerID:  player.ID,
			TeaCardID: card.ID,
			Quantity:  1,
		}); err != nil {
			return err
		}
	}
	return nil
}

// SeedQuests seeds the global quest board
func (s *Seeder) SeedQuests() error {
	log.Printf("Seeding quests...")

	existing, err := s.questRepo.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Quests already exist, skipping.")
		return nil
	}

	quests := []*domain.Quest{
		{
			Title:            "Daily Discovery",
			Description:      "Find and collect 3 different green tea varieties.",
			Type:             domain.QuestTypeDaily,
			Requirement:      3,
			ExperienceReward: 500,
			CoinReward:       200,
		},
		{
			Title:            "Master Collector",
			Description:      "Collect 25 different tea cards from various regions around the world.",
			Type:             domain.QuestTypeWeekly,
			Requirement:      25,
			ExperienceReward: 2000,
			CoinReward:       1000,
		},
		{
			Title:            "First Brew",
			Description:      "Brew your very first cup of tea.",
			Type:             domain.QuestTypeSpecial,
			Requirement:      1,
			ExperienceReward: 100,
			CoinReward:       50,
		},
	}
	for _, q := range quests {
		if err := s.questRepo.Create(q); err != nil {
			return err
		}
	}
	return nil
}

// SeedAchievements seeds achievements for the starter player
func (s *Seeder) SeedAchievements(player *domain.Player) error {
	log.Printf("Seeding achievements...")

	existing, err := s.achievementRepo.ListByPlayer(player.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Achievements already exist, skipping.")
		return nil
	}

	achievements := []*domain.Achievement{
		{
			PlayerID:         player.ID,
			Title:            "Tea Novice",
			Description:      "Collect your first tea card.",
			Category:         "collection",
			Requirement:      1,
			ExperienceReward: 100,
			CoinReward:       50,
		},
		{
			PlayerID:         player.ID,
			Title:            "Green Thumb",
			Description:      "Collect 5 green tea cards.",
			Category:         "collection",
			Requirement:      5,
			ExperienceReward: 300,
			CoinReward:       150,
		},
		{
			PlayerID:         player.ID,
			Title:            "Connoisseur",
			Description:      "Reach level 10.",
			Category:         "progression",
			Requirement:      10,
			ExperienceReward: 1000,
			CoinReward:       500,
		},
	}
	for _, a := range achievements {
		if err := s.achievementRepo.Create(a); err != nil {
			return err
		}
	}
	return nil
}

// SeedWeeklyEvents seeds the recurring event schedule
func (s *Seeder) SeedWeeklyEvents() error {
	log.Printf("Seeding weekly events...")

	existing, err := s.eventRepo.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Weekly events already exist, skipping.")
		return nil
	}

	events := []*domain.WeeklyEvent{
		{
			Title:        "Green Tea Discovery",
			Description:  "New player friendly tasting session.",
			DayOfWeek:    "monday",
			StartTime:    "18:00",
			EndTime:      "20:00",
			RewardType:   "experience",
			RewardAmount: 250,
		},
		{
			Title:        "Oolong Mastery",
			Description:  "Advanced brewing techniques workshop.",
			DayOfWeek:    "tuesday",
			StartTime:    "17:00",
			EndTime:      "19:00",
			RewardType:   "coins",
			RewardAmount: 400,
		},
		{
			Title:        "Rare Tea Hunt",
			Description:  "Hunt for rare cards across the garden.",
			DayOfWeek:    "wednesday",
			StartTime:    "11:00",
			EndTime:      "13:00",
			RewardType:   "experience",
			RewardAmount: 600,
		},
		{
			Title:        "Weekend Ceremony",
			Description:  "Traditional tea ceremony with bonus rewards.",
			DayOfWeek:    "saturday",
			StartTime:    "15:00",
			EndTime:      "18:00",
			RewardType:   "coins",
			RewardAmount: 800,
		},
	}
	for _, e := range events {
		if err := s.eventRepo.Create(e); err != nil {
			return err
		}
	}

	log.Printf("Weekly event seeding completed")
	return nil
}
