package execution

// Scheduler distributes targets across workers
type Scheduler interface {
	Schedule(targets []Target, workerCount int) [][]Target
}

// RoundRobinScheduler distributes targets evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes targets evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(targets []Target, workerCount int) [][]Target {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]Target, workerCount)
	for i := range distribution {
		distribution[i] = make([]Target, 0)
	}

	for i, target := range targets {
		distribution[i%workerCount] = append(distribution[i%workerCount], target)
	}

	return distribution
}
