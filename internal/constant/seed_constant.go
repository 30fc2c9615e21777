package constant

const (
	SeedResultAlreadySeeded = "Languages already seeded"
	SeedResultSuccess       = "Languages seeded successfully"
)
