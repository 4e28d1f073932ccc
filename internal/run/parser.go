package run

import (
	"encoding/json"
	"fmt"

	"github.com/slaytrack/slaytrack/internal/domain"
)

// Parse converts one raw .run document into its canonical form.
//
// Only two things can fail: the document is not a JSON object
// (domain.ErrMalformedRun) or play_id is missing/empty
// (domain.ErrMissingPlayID). Every other field takes its documented default
// when absent. The original bytes are preserved verbatim in Run.RawData so
// the stored record can always be replayed.
func Parse(data []byte) (*domain.Run, error) {
	var raw domain.RawRun
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRun, err)
	}

	r, err := fromRaw(&raw)
	if err != nil {
		return nil, err
	}

	r.RawData = append(json.RawMessage(nil), data...)
	return r, nil
}

// fromRaw builds the canonical record from an already-decoded raw run.
// Defaulting lives here, in one place, rather than at each access site.
func fromRaw(raw *domain.RawRun) (*domain.Run, error) {
	if raw.PlayID == "" {
		return nil, domain.ErrMissingPlayID
	}

	character := raw.CharacterChosen
	if character == "" {
		character = domain.CharacterUnknown
	}

	rested, upgraded := 0, 0
	for _, c := range raw.CampfireChoices {
		switch c.Key {
		case campfireKeyRest:
			rested++
		case campfireKeySmith:
			upgraded++
		}
	}

	return &domain.Run{
		RunIdentifier:       Identifier(raw.PlayID, raw.SeedSourceTimestamp, raw.SeedPlayed),
		PlayID:              raw.PlayID,
		SeedPlayed:          raw.SeedPlayed,
		SeedSourceTimestamp: raw.SeedSourceTimestamp,
		UserID:              domain.DefaultUserID,
		Character:           character,
		FloorReached:        raw.FloorReached,
		Victory:             raw.Victory,
		Score:               raw.Score,
		AscensionLevel:      raw.AscensionLevel,
		IsAscensionMode:     raw.IsAscensionMode,
		IsDaily:             raw.IsDaily,
		Playtime:            raw.Playtime,
		Timestamp:           raw.SeedSourceTimestamp,
		LocalTime:           raw.LocalTime,
		Gold:                lastOrZero(raw.GoldPerFloor),
		MaxHPFinal:          lastOrZero(raw.MaxHPPerFloor),
		CurrentHPFinal:      lastOrZero(raw.CurrentHPPerFloor),
		DeckSize:            len(raw.MasterDeck),
		RelicCount:          len(raw.Relics),
		CardsPicked:         len(raw.CardChoices),
		CampfireRested:      rested,
		CampfireUpgraded:    upgraded,
		ItemsPurgedCount:    len(raw.ItemsPurged),
		KilledBy:            raw.KilledBy,
		NeowBonus:           raw.NeowBonus,
		NeowCost:            raw.NeowCost,
		ChoseNeowReward:     raw.ChoseNeowReward,
		Raw:                 raw,
	}, nil
}

func lastOrZero(s []int) int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}
