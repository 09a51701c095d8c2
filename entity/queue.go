package entity

type AgentQueue struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

type AgentPool struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	Size int    `json:"size,omitempty"`
}
