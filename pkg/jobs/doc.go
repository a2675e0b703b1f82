// Package jobs implements the job application service: field validation,
// defaulting, and ownership scoping on top of the jobs store.
//
// Every operation takes the id of an already-authenticated owner. A job that
// does not exist and a job owned by a different user both surface as
// store.ErrJobNotFound; callers cannot tell the two apart.
package jobs
