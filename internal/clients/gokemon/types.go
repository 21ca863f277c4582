package gokemon

import (
	"susie.mx/gokemon-client/internal/entities"
)

// Wire shapes for the Gokemon REST API. Field names follow the server's
// JSON contract; conversion to internal entities happens at this boundary
// and nowhere else.

type speciesPayload struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	IsLegendary bool          `json:"isLegendary"`
	IsMythical  bool          `json:"isMythical"`
	Forms       []formPayload `json:"forms"`
}

type formPayload struct {
	Name    string         `json:"name"`
	Types   []typePayload  `json:"types"`
	Sprites spritesPayload `json:"sprites"`
}

type typePayload struct {
	Name string `json:"name"`
}

type spritesPayload struct {
	FrontDefault     string `json:"frontDefault"`
	FrontFemale      string `json:"frontFemale"`
	FrontShiny       string `json:"frontShiny"`
	FrontShinyFemale string `json:"frontShinyFemale"`
}

type ownedItemPayload struct {
	ID        int64 `json:"id"`
	SpeciesID int64 `json:"speciesId"`
	FormIndex int   `json:"formIndex"`
	IsShiny   bool  `json:"isShiny"`
}

type accountPayload struct {
	ID                int64              `json:"id"`
	Username          string             `json:"username"`
	ProfilePictureURL string             `json:"profilePictureUrl"`
	OwnedPokemon      []ownedItemPayload `json:"ownedPokemon"`
	PendingPokemon    []ownedItemPayload `json:"pendingPokemon"`
	Friends           []friendPayload    `json:"friends"`
	NextSelectionAt   int64              `json:"nextPokemonSelectionTimestamp"`
	PreferredForms    map[int64]int      `json:"preferredForms"`
}

type friendPayload struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

type friendRequestPayload struct {
	ID     int64         `json:"id"`
	User   friendPayload `json:"user"`
	Friend friendPayload `json:"friend"`
}

type friendRequestListPayload struct {
	Sent []friendRequestPayload `json:"sent"`
	// The server misspells this key; trade requests spell it correctly.
	Received []friendRequestPayload `json:"recieved"`
}

type tradeRequestPayload struct {
	ID              int64         `json:"id"`
	User            friendPayload `json:"user"`
	UserPokemonID   int64         `json:"userPokemonId"`
	Friend          friendPayload `json:"friend"`
	FriendPokemonID int64         `json:"friendPokemonId"`
}

type tradeRequestListPayload struct {
	Sent     []tradeRequestPayload `json:"sent"`
	Received []tradeRequestPayload `json:"received"`
}

func (p speciesPayload) toEntity() entities.Species {
	forms := make([]entities.Form, 0, len(p.Forms))
	for _, f := range p.Forms {
		forms = append(forms, f.toEntity())
	}
	return entities.Species{
		ID:          p.ID,
		Name:        p.Name,
		IsLegendary: p.IsLegendary,
		IsMythical:  p.IsMythical,
		Forms:       forms,
	}
}

func (p formPayload) toEntity() entities.Form {
	types := make([]entities.TypeTag, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, entities.TypeTag{Name: t.Name})
	}
	return entities.Form{
		Name:  p.Name,
		Types: types,
		Sprites: entities.SpriteSet{
			FrontDefault:     p.Sprites.FrontDefault,
			FrontFemale:      p.Sprites.FrontFemale,
			FrontShiny:       p.Sprites.FrontShiny,
			FrontShinyFemale: p.Sprites.FrontShinyFemale,
		},
	}
}

func (p ownedItemPayload) toEntity() entities.OwnedItem {
	return entities.OwnedItem{
		ID:        p.ID,
		SpeciesID: p.SpeciesID,
		FormIndex: p.FormIndex,
		IsShiny:   p.IsShiny,
	}
}

func (p accountPayload) toEntity() *entities.Account {
	owned := make([]entities.OwnedItem, 0, len(p.OwnedPokemon))
	for _, item := range p.OwnedPokemon {
		owned = append(owned, item.toEntity())
	}
	pending := make([]entities.OwnedItem, 0, len(p.PendingPokemon))
	for _, item := range p.PendingPokemon {
		pending = append(pending, item.toEntity())
	}
	friends := make([]entities.Friend, 0, len(p.Friends))
	for _, f := range p.Friends {
		friends = append(friends, f.toEntity())
	}
	return &entities.Account{
		ID:                p.ID,
		Username:          p.Username,
		ProfilePictureURL: p.ProfilePictureURL,
		OwnedItems:        owned,
		PendingItems:      pending,
		Friends:           friends,
		NextSelectionAt:   p.NextSelectionAt,
		PreferredForms:    p.PreferredForms,
	}
}

func (p friendPayload) toEntity() entities.Friend {
	return entities.Friend{
		ID:                p.ID,
		Username:          p.Username,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}

func (p friendRequestPayload) toEntity() entities.FriendRequest {
	return entities.FriendRequest{
		ID:   p.ID,
		From: p.User.toEntity(),
		To:   p.Friend.toEntity(),
	}
}

func (p tradeRequestPayload) toEntity() entities.TradeRequest {
	return entities.TradeRequest{
		ID:            p.ID,
		From:          p.User.toEntity(),
		OfferedItemID: p.UserPokemonID,
		To:            p.Friend.toEntity(),
		WantedItemID:  p.FriendPokemonID,
	}
}
