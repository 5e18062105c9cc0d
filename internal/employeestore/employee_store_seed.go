package employeestore

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
)

// EmailTemplate turns a generated username into the employee's email.
const EmailTemplate = "%s@company.com"

type UsernameGenerator interface {
	Username() string
}

// Faker serialises access to a faker.Faker, which is not safe for concurrent use.
type Faker struct {
	mu sync.Mutex
	f  faker.Faker
}

// NewFaker builds a generator. seed 0 picks a time based seed.
func NewFaker(seed int64) *Faker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Faker{f: faker.NewWithSeed(rand.NewSource(seed))}
}

func (g *Faker) Username() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return strings.ToLower(g.f.Internet().User())
}

// Employees generates n synthetic records suitable for seeding a repository.
func (g *Faker) Employees(n int) []Employee {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Employee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Employee{
			ID:     uuid.New(),
			Name:   g.f.Person().Name(),
			Salary: g.f.IntBetween(30_000, 400_000),
			Age:    g.f.IntBetween(16, 75),
			Title:  g.f.Company().JobTitle(),
			Email:  formatEmail(strings.ToLower(g.f.Internet().User())),
		})
	}
	return out
}
