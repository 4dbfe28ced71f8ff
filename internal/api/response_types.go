package api

import "github.com/ita-growin/growin/internal/models"

type userResponse struct {
	UserID        uint   `json:"userId"`
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	LoginType     string `json:"loginType"`
	Status        string `json:"status"`
	Work          string `json:"work"`
	InterestField string `json:"interestField"`
	Target        string `json:"target"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
}

type eventResponse struct {
	EventID       uint    `json:"eventId"`
	Title         string  `json:"title"`
	AllDay        bool    `json:"allDay"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	StartDay      *int    `json:"startDay"`
	EndDay        *int    `json:"endDay"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	RepeatType    string  `json:"repeatType"`
	RepeatCount   int     `json:"repeatCount"`
	RepeatEndDate *string `json:"repeatEndDate"`
}

type taskResponse struct {
	TaskID     uint    `json:"taskId"`
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	EventID    *uint   `json:"eventId"`
	RepeatType *string `json:"repeatType"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
}

func buildUserResponse(user models.User) userResponse {
	return userResponse{
		UserID:        user.ID,
		Email:         user.Email,
		Nickname:      user.Nickname,
		LoginType:     user.LoginType,
		Status:        user.Status,
		Work:          user.Work,
		InterestField: user.InterestField,
		Target:        user.Target,
	}
}

func buildEventResponse(event models.Event) eventResponse {
	return eventResponse{
		EventID:       event.ID,
		Title:         event.Title,
		AllDay:        event.AllDay,
		StartDate:     formatDateField(event.StartDate),
		EndDate:       formatDateField(event.EndDate),
		StartDay:      event.StartDay,
		EndDay:        event.EndDay,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		RepeatType:    event.RepeatType,
		RepeatCount:   event.RepeatCount,
		RepeatEndDate: formatDateField(event.RepeatEndDate),
	}
}

func buildEventResponses(events []models.Event) []eventResponse {
	responses := make([]eventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, buildEventResponse(event))
	}
	return responses
}

func buildTaskResponse(task models.Task) taskResponse {
	return taskResponse{
		TaskID:     task.ID,
		Title:      task.Title,
		Type:       task.Type,
		EventID:    task.EventID,
		RepeatType: task.RepeatType,
		StartDate:  formatDateField(task.StartDate),
		EndDate:    formatDateField(task.EndDate),
	}
}

func buildTaskResponses(tasks []models.Task) []taskResponse {
	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, buildTaskResponse(task))
	}
	return responses
}
