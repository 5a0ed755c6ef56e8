package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type fakeRepo struct {
	saved []*Assessment
	err   error
}

func (f *fakeRepo) Create(a *Assessment) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeRepo) GetByID(id string) (*Assessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.saved {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List() ([]*Assessment, error) {
	return f.saved, f.err
}

func (f *fakeRepo) ListByStudent(studentName string) ([]*Assessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*Assessment
	for _, a := range f.saved {
		if a.StudentName == studentName {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(id string) error { return f.err }

func TestSave(t *testing.T) {
	ctx := context.Background()
	result := json.RawMessage(`{"accuracy":92.5,"wordsPerMinute":110,"fluencyScore":8,"positiveFeedback":"Clear voice","actionableTip":"Slow down on long words","pronunciationHotspots":["photosynthesis"]}`)

	t.Run("DenormalizesHeadlineNumbers", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		a, err := svc.Save(ctx, SaveRequest{
			StudentName: "Priya",
			Grade:       "4",
			Subject:     "Science",
			Result:      result,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Accuracy != 92.5 || a.WordsPerMinute != 110 || a.FluencyScore != 8 {
			t.Errorf("headline numbers not extracted: %+v", a)
		}
		if len(repo.saved) != 1 {
			t.Fatalf("saved %d assessments, want 1", len(repo.saved))
		}
	})

	t.Run("ResultWithoutScoresStoresZeros", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		a, err := svc.Save(ctx, SaveRequest{
			StudentName: "Ravi",
			Result:      json.RawMessage(`{"notes":"observed orally"}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Accuracy != 0 || a.FluencyScore != 0 {
			t.Errorf("expected zero scores, got %+v", a)
		}
	})

	t.Run("RepositoryErrorPropagates", func(t *testing.T) {
		wantErr := errors.New("connection refused")
		svc := NewService(&fakeRepo{err: wantErr})

		if _, err := svc.Save(ctx, SaveRequest{StudentName: "Priya", Result: result}); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(repo)

	for _, name := range []string{"Priya", "Ravi", "Priya"} {
		if _, err := svc.Save(ctx, SaveRequest{StudentName: name, Result: json.RawMessage(`{}`)}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	t.Run("AllStudents", func(t *testing.T) {
		all, err := svc.List(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("listed %d assessments, want 3", len(all))
		}
	})

	t.Run("FilteredByStudent", func(t *testing.T) {
		mine, err := svc.List(ctx, "Priya")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mine) != 2 {
			t.Errorf("listed %d assessments for Priya, want 2", len(mine))
		}
	})
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(repo)

	saved, err := svc.Save(ctx, SaveRequest{
		StudentName: "Anjali",
		Grade:       "5",
		Subject:     "English",
		Result:      json.RawMessage(`{"accuracy":88,"wordsPerMinute":95,"fluencyScore":7,"pronunciationHotspots":["thorough","enough"],"actionableTip":"Practice th sounds"}`),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	t.Run("SummarizesResult", func(t *testing.T) {
		report, err := svc.Report(ctx, saved.ID.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report == nil {
			t.Fatal("report is nil for existing assessment")
		}
		for _, want := range []string{"Anjali", "88.0%", "95 words per minute", "thorough, enough", "Practice th sounds"} {
			if !strings.Contains(report.Summary, want) {
				t.Errorf("summary missing %q:\n%s", want, report.Summary)
			}
		}
	})

	t.Run("UnknownIDReturnsNil", func(t *testing.T) {
		report, err := svc.Report(ctx, "0b2d9a3e-0000-0000-0000-000000000000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report != nil {
			t.Errorf("report = %+v, want nil", report)
		}
	})
}
