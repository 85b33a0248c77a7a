package userkv

import (
	"context"
	"testing"

	"github.com/worldloom/worldloom/x/userkv/mock"
	"go.uber.org/mock/gomock"
)

func TestServiceGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_userkv.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "myuser", "mykey").Return("myvalue", nil)

	s := NewService(mockRepo)
	result, err := s.Get(context.Background(), "myuser", "mykey")

	if err != nil {
		t.Fatal(err)
	}
	if result != "myvalue" {
		t.Fatalf("expected myvalue, got %s", result)
	}
}

func TestServiceUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_userkv.NewMockRepository(ctrl)
	mockRepo.EXPECT().Upsert(gomock.Any(), "myuser", "mykey", "myvalue").Return(nil)

	s := NewService(mockRepo)
	err := s.Upsert(context.Background(), "myuser", "mykey", "myvalue")

	if err != nil {
		t.Fatal(err)
	}
}
