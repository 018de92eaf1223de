package commands

import (
	"context"
	"errors"
	"fmt"
	"solaire/internal/core/domain"
	"solaire/internal/core/domain/command"
	"strings"
	"sync"
	"time"
)

var ErrAnimalNotFound = errors.New("animal is not in the farm")

const (
	farmerRole     = "farmer"
	historyLength  = 10
	maxPets        = 100
	emptyFarm      = "There are no animals in the farm :("
	emptyHistory   = "Nobody has pet an animal yet."
	farmClosed     = "The farm is now closed!"
	farmReset      = "The farm has been cleared."
	unknownHarvest = "an unknown date"
)

type Animal struct {
	Kind string
	Name string
}

type Pet struct {
	Date     time.Time
	UserID   string
	Username string
	Name     string
}

type Harvest struct {
	Crop string
	Date time.Time
	Kg   float64
}

// Farm is the state behind the farm commands. It is safe for concurrent use.
type Farm struct {
	mutex    sync.Mutex
	now      func() time.Time
	animals  []Animal
	pets     []Pet
	harvests []Harvest
}

func NewFarm() *Farm {
	return &Farm{now: time.Now}
}

// AddAnimal adds an animal. Without a name it is called after its kind and how many of that kind
// the farm already has, e.g. "cow 2".
func (f *Farm) AddAnimal(kind, name string) Animal {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if name == "" {
		count := 0
		for _, a := range f.animals {
			if a.Kind == kind {
				count++
			}
		}
		name = fmt.Sprintf("%s %d", kind, count+1)
	}

	animal := Animal{Kind: kind, Name: name}
	f.animals = append(f.animals, animal)

	return animal
}

func (f *Farm) All() []Animal {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	animals := make([]Animal, len(f.animals))
	copy(animals, f.animals)

	return animals
}

func (f *Farm) Pet(userID, username, name string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	found := false
	for _, a := range f.animals {
		if a.Name == name {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("cannot pet %s: %w", name, ErrAnimalNotFound)
	}

	f.pets = append(f.pets, Pet{Date: f.now(), UserID: userID, Username: username, Name: name})

	return nil
}

// PetHistory returns up to limit pets, newest first. An empty userID matches every user.
func (f *Farm) PetHistory(userID string, limit int) []Pet {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	var history []Pet
	for i := len(f.pets) - 1; i >= 0 && len(history) < limit; i-- {
		if userID == "" || f.pets[i].UserID == userID {
			history = append(history, f.pets[i])
		}
	}

	return history
}

func (f *Farm) Harvest(crop string, date time.Time, kg float64) Harvest {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	h := Harvest{Crop: crop, Date: date, Kg: kg}
	f.harvests = append(f.harvests, h)

	return h
}

func (f *Farm) Reset() {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.animals = nil
	f.pets = nil
	f.harvests = nil
}

// FarmHandler exposes a Farm as chat commands.
type FarmHandler struct {
	farm *Farm
}

func NewFarmHandler(farm *Farm) *FarmHandler {
	return &FarmHandler{farm: farm}
}

// Definitions returns the farm commands. resetGuard protects the destructive reset command.
func (h *FarmHandler) Definitions(resetGuard command.GuardFunc) []command.Definition {
	return []command.Definition{
		{
			Spec:        "add-animal|add <animalKind> [animalName]",
			Description: "Add an animal to the farm.",
			Execute:     h.add,
		},
		{
			Spec:        "farm",
			Description: "List the animals in the farm.",
			Execute:     h.list,
		},
		{
			Spec:        "pet <name> [times:Int]",
			Description: "Pet an animal, optionally several times.",
			Execute:     h.pet,
		},
		{
			Spec:        "petHistory|pets [user:GuildMember]",
			Description: "Show the latest pets, optionally for one user.",
			Execute:     h.history,
		},
		{
			Spec:        "harvest <crop> <when:Date> [kg:Float]",
			Description: "Log a harvest.",
			Execute:     h.harvest,
		},
		{
			Spec:        "closeFarm|close",
			Description: "Close the farm. Farmers only.",
			Execute:     h.close,
			Guard:       farmersOnly,
		},
		{
			Spec:        "resetFarm|reset",
			Description: "Remove every animal, pet and harvest.",
			Execute:     h.reset,
			Guard:       resetGuard,
		},
	}
}

func (h *FarmHandler) add(ctx context.Context, p *command.Payload) error {
	kind, _ := p.Args.String("animalKind")
	name, _ := p.Args.String("animalName")

	animal := h.farm.AddAnimal(kind, name)

	return p.Reply(ctx, fmt.Sprintf("%s the %s joined the farm.", animal.Name, animal.Kind))
}

func (h *FarmHandler) list(ctx context.Context, p *command.Payload) error {
	animals := h.farm.All()
	if len(animals) == 0 {
		return p.Reply(ctx, emptyFarm)
	}

	sb := &strings.Builder{}
	for _, a := range animals {
		fmt.Fprintf(sb, "%s the %s\n", a.Name, a.Kind)
	}

	return p.Reply(ctx, sb.String())
}

func (h *FarmHandler) pet(ctx context.Context, p *command.Payload) error {
	name, _ := p.Args.String("name")

	times := 1
	if p.Args.Has("times") {
		times, _ = p.Args.Int("times")
	}

	if times < 1 || times > maxPets {
		return p.Reply(ctx, fmt.Sprintf("You can pet an animal between 1 and %d times.", maxPets))
	}

	for range times {
		err := h.farm.Pet(p.Message.AuthorID, p.Message.Username, name)
		if errors.Is(err, ErrAnimalNotFound) {
			return p.Reply(ctx, fmt.Sprintf("Cannot pet %s, they're not in the farm", name))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (h *FarmHandler) history(ctx context.Context, p *command.Payload) error {
	var userID string
	if member, ok := p.Args.Member("user"); ok {
		userID = member.ID
	}

	pets := h.farm.PetHistory(userID, historyLength)
	if len(pets) == 0 {
		return p.Reply(ctx, emptyHistory)
	}

	sb := &strings.Builder{}
	for _, pet := range pets {
		who := pet.Username
		if p.Message.Transport == domain.Discord {
			who = domain.Mention(pet.UserID)
		}

		fmt.Fprintf(sb, "%s %s pet %s\n", pet.Date.Format(time.DateTime), who, pet.Name)
	}

	return p.Reply(ctx, sb.String())
}

func (h *FarmHandler) harvest(ctx context.Context, p *command.Payload) error {
	crop, _ := p.Args.String("crop")
	when, _ := p.Args.Time("when")
	kg, _ := p.Args.Float("kg")

	harvest := h.farm.Harvest(crop, when, kg)

	date := unknownHarvest
	if !harvest.Date.IsZero() {
		date = harvest.Date.Format(time.DateOnly)
	}

	if harvest.Kg > 0 {
		return p.Reply(ctx, fmt.Sprintf("Logged %gkg of %s harvested on %s.", harvest.Kg, harvest.Crop, date))
	}

	return p.Reply(ctx, fmt.Sprintf("Logged a %s harvest on %s.", harvest.Crop, date))
}

func (h *FarmHandler) close(ctx context.Context, p *command.Payload) error {
	return p.Reply(ctx, farmClosed)
}

func (h *FarmHandler) reset(ctx context.Context, p *command.Payload) error {
	h.farm.Reset()

	return p.Reply(ctx, farmReset)
}

// farmersOnly denies anyone without the farmer role, then authorizes. The denial still wins.
func farmersOnly(_ context.Context, p *command.Payload) command.Decision {
	var decision command.Decision
	if !p.Message.HasRole(farmerRole) {
		decision = decision.Deny("")
	}

	return decision.Allow()
}
