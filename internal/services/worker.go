package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(parseID uuid.UUID)
}

type worker struct {
	parseRepo      repositories.CvParseRepository
	profileService ProfileService
	jobQueue       chan uuid.UUID
	concurrency    int
	pollInterval   time.Duration
	wg             sync.WaitGroup
	stopChan       chan struct{}
}

func NewWorker(
	parseRepo repositories.CvParseRepository,
	profileService ProfileService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		parseRepo:      parseRepo,
		profileService: profileService,
		jobQueue:       make(chan uuid.UUID, 100),
		concurrency:    concurrency,
		pollInterval:   pollInterval,
		stopChan:       make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	// Start worker goroutines
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Start polling for pending jobs
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(parseID uuid.UUID) {
	select {
	case w.jobQueue <- parseID:
		log.Printf("📥 Parse job %s enqueued\n", parseID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue parse job %s\n", parseID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing jobs\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case parseID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing parse job %s\n", workerID, parseID)
			if err := w.profileService.ProcessParse(ctx, parseID); err != nil {
				log.Printf("❌ Worker #%d failed to process parse job %s: %v\n", workerID, parseID, err)
			} else {
				log.Printf("✅ Worker #%d completed parse job %s\n", workerID, parseID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting pending jobs poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending jobs poller stopped")
			return
		case <-ticker.C:
			pendingJobs, err := w.parseRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending jobs: %v\n", err)
				continue
			}

			if len(pendingJobs) > 0 {
				log.Printf("📋 Found %d pending parse jobs\n", len(pendingJobs))
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
