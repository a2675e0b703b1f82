// Package model defines the database models for JobTrackr.
//
// This package contains GORM models that map to the JobTrackr PostgreSQL
// schema.
//
// # Core Models
//
//   - User: registered accounts with bcrypt password hashes
//   - Job: job applications, each owned by exactly one user
//
// # Database Schema
//
// The database uses PostgreSQL with two tables:
//
//   - users: account identities and password hashes
//   - jobs: job application records, keyed to users via user_id
package model
