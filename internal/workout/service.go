package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/ai"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/member"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/metrics"
)

const systemPrompt = "You are a certified fitness coach at a gym. " +
	"Write a practical one-week workout plan in plain text. " +
	"Respect any medical conditions mentioned and keep the plan achievable for the member's profile."

type Completer interface {
	Complete(ctx context.Context, messages []ai.Message) (string, error)
}

type MemberDirectory interface {
	GetProfile(ctx context.Context, userID int) (*member.Profile, error)
}

type Service interface {
	GeneratePlan(ctx context.Context, userID int, req GeneratePlanRequest) (*WorkoutPlan, error)
	ListMyPlans(ctx context.Context, userID int) ([]WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID int) error
}

type service struct {
	repo    Repository
	ai      Completer
	members MemberDirectory
}

func NewService(repo Repository, completer Completer, members MemberDirectory) Service {
	return &service{repo: repo, ai: completer, members: members}
}

func (s *service) GeneratePlan(ctx context.Context, userID int, req GeneratePlanRequest) (*WorkoutPlan, error) {
	profile, err := s.members.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(profile, req.Goal)

	content, err := s.ai.Complete(ctx, []ai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		metrics.RecordWorkoutPlan("failed")
		return nil, err
	}
	metrics.RecordWorkoutPlan("success")

	plan := &WorkoutPlan{
		MemberID: profile.ID,
		Goal:     req.Goal,
		Content:  content,
	}

	return s.repo.Create(ctx, plan)
}

func (s *service) ListMyPlans(ctx context.Context, userID int) ([]WorkoutPlan, error) {
	profile, err := s.members.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListForMember(ctx, profile.ID)
}

func (s *service) DeletePlan(ctx context.Context, userID, planID int) error {
	profile, err := s.members.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, planID, profile.ID)
}

func buildPrompt(p *member.Profile, goal string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Member: %s, age %d.\n", p.FullName, p.Age)
	if p.HeightCm != nil {
		fmt.Fprintf(&b, "Height: %.0f cm.\n", *p.HeightCm)
	}
	if p.WeightKg != nil {
		fmt.Fprintf(&b, "Weight: %.1f kg.\n", *p.WeightKg)
	}
	if p.BMI != nil {
		fmt.Fprintf(&b, "BMI: %.2f.\n", *p.BMI)
	}
	if p.MedicalConditions != nil && *p.MedicalConditions != "" {
		fmt.Fprintf(&b, "Medical conditions: %s.\n", *p.MedicalConditions)
	}
	fmt.Fprintf(&b, "Goal: %s.", goal)

	return b.String()
}
