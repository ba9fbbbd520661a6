package config

import (
	"github.com/DoTranTuyen/fullstack-dath/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"bestsellers": {Schedule: "0 1 * * *", Job: jobs.BestSellersJob},
	// Add more jobs here
}

func init() {
	// Jobs get their DB through this hook; importing config from the jobs
	// package would close a cycle with this file.
	jobs.OpenDB = NewDB
}
