package db

import "gorm.io/gorm"

type Repositories struct {
	Users  *UserRepository
	Events *EventRepository
	Tasks  *TaskRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(database),
		Events: NewEventRepository(database),
		Tasks:  NewTaskRepository(database),
	}
}
