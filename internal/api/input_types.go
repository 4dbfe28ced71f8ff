package api

type kakaoSignupPayload struct {
	AccessToken   string `json:"accessToken"`
	Work          string `json:"work"`
	InterestField string `json:"interestField"`
	Target        string `json:"target"`
	DeviceToken   string `json:"deviceToken"`
}

type kakaoLoginPayload struct {
	AccessToken string `json:"accessToken"`
	DeviceToken string `json:"deviceToken"`
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type profilePayload struct {
	Nickname      *string `json:"nickname"`
	Work          *string `json:"work"`
	InterestField *string `json:"interestField"`
	Target        *string `json:"target"`
}

type eventPayload struct {
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

type taskPayload struct {
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	EventID    *uint   `json:"eventId"`
	RepeatType *string `json:"repeatType"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
}
