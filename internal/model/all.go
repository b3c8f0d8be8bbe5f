package model

// All lists every table for AutoMigrate, parents before children
func All() []interface{} {
	return []interface{}{
		&Problem{},
		&ProblemEmbedding{},
		&Dealership{},
		&Labour{},
		&Bay{},
		&Part{},
		&InsuranceRule{},
		&Customer{},
		&Vehicle{},
		&ServiceRequest{},
		&Conversation{},
	}
}
