// CloudWatch 알람 이벤트 페이로드 구조체 정의
// EventBridge 알람 상태 변경 이벤트의 detail 필드만 사용

package model

// AlarmEvent - CloudWatch alarm state-change event.
type AlarmEvent struct {
	Detail AlarmDetail `json:"detail"`
}

type AlarmDetail struct {
	AlarmName string     `json:"alarmName"`
	State     AlarmState `json:"state"`
}

// AlarmState - value는 "ALARM"(장애) 또는 "OK"(복구)
type AlarmState struct {
	Value      string `json:"value"`
	ReasonData string `json:"reasonData"`
}

// AlarmName returns the alarm name.
func (e AlarmEvent) AlarmName() string {
	if e.Detail.AlarmName == "" {
		return "Unknown Alarm"
	}
	return e.Detail.AlarmName
}

// StateValue returns the alarm state.
func (e AlarmEvent) StateValue() string {
	if e.Detail.State.Value == "" {
		return "UNKNOWN"
	}
	return e.Detail.State.Value
}

// Reason returns the state reason.
func (e AlarmEvent) Reason() string {
	if e.Detail.State.ReasonData == "" {
		return "No reason provided"
	}
	return e.Detail.State.ReasonData
}
