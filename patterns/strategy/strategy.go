// Package strategy demonstrates the Strategy pattern: an employee's bonus
// is computed by an interchangeable rule.
package strategy

// BonusStrategy computes a bonus from a base salary.
type BonusStrategy interface {
	Bonus(salary float64) float64
}

// FlatRate pays a fixed fraction of the salary.
type FlatRate struct {
	Rate float64
}

func (f FlatRate) Bonus(salary float64) float64 {
	return salary * f.Rate
}

// Seniority pays a fraction that grows with years of service, capped at
// twenty percent.
type Seniority struct {
	Years int
}

func (s Seniority) Bonus(salary float64) float64 {
	rate := 0.02 * float64(s.Years)
	if rate > 0.20 {
		rate = 0.20
	}
	return salary * rate
}

// NoBonus pays nothing.
type NoBonus struct{}

func (NoBonus) Bonus(float64) float64 { return 0 }

// Employee has a salary and a bonus rule chosen at runtime.
type Employee struct {
	Name   string
	Salary float64
	Rule   BonusStrategy
}

// TotalPay returns salary plus the rule's bonus. A nil rule means no bonus.
func (e Employee) TotalPay() float64 {
	if e.Rule == nil {
		return e.Salary
	}
	return e.Salary + e.Rule.Bonus(e.Salary)
}
