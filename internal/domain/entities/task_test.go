package entities

import "testing"

func TestTask_ApplyDefaults(t *testing.T) {
	t.Run("atribui ao criador quando não há responsável", func(t *testing.T) {
		task := &Task{Titulo: "t", DueDate: "2026-10-01", CreatedBy: "user-1"}
		task.ApplyDefaults()

		if task.Status != TaskStatusNova {
			t.Errorf("esperava status 'nova', obteve '%s'", task.Status)
		}
		if task.Priority != PriorityMedium {
			t.Errorf("esperava priority 'medium', obteve '%s'", task.Priority)
		}
		if task.AssignedTo == nil || *task.AssignedTo != "user-1" {
			t.Errorf("esperava responsável 'user-1', obteve %v", task.AssignedTo)
		}
	})

	t.Run("responsável vazio também recai no criador", func(t *testing.T) {
		empty := ""
		task := &Task{Titulo: "t", DueDate: "2026-10-01", CreatedBy: "user-1", AssignedTo: &empty}
		task.ApplyDefaults()

		if task.AssignedTo == nil || *task.AssignedTo != "user-1" {
			t.Errorf("esperava responsável 'user-1', obteve %v", task.AssignedTo)
		}
	})

	t.Run("mantém responsável explícito", func(t *testing.T) {
		assignee := "user-2"
		task := &Task{Titulo: "t", DueDate: "2026-10-01", CreatedBy: "user-1", AssignedTo: &assignee}
		task.ApplyDefaults()

		if *task.AssignedTo != "user-2" {
			t.Errorf("responsável explícito foi sobrescrito: '%s'", *task.AssignedTo)
		}
	})
}

func TestTask_IsAssignedToOther(t *testing.T) {
	assignee := "user-2"
	creator := "user-1"

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"atribuída a outro", Task{CreatedBy: "user-1", AssignedTo: &assignee}, true},
		{"atribuída ao criador", Task{CreatedBy: "user-1", AssignedTo: &creator}, false},
		{"sem responsável", Task{CreatedBy: "user-1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsAssignedToOther(); got != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, got)
			}
		})
	}
}

func TestTaskStatus_IsValid(t *testing.T) {
	valid := []TaskStatus{TaskStatusNova, TaskStatusEmAndamento, TaskStatusConcluida, TaskStatusArquivada, TaskStatusLixeira}
	for _, status := range valid {
		if !status.IsValid() {
			t.Errorf("esperava '%s' válido", status)
		}
	}

	for _, status := range []TaskStatus{"", "done", "em andamento", "NOVA"} {
		if status.IsValid() {
			t.Errorf("esperava '%s' inválido", status)
		}
	}
}
