package main

import (
	"coursebridge/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RoleModel{},
		model.PermissionModel{},
		model.RefreshTokenModel{},
		model.CourseRequestModel{},
		model.SOPDocumentModel{},
		model.ClientFeedbackModel{},
		model.CourseModel{},
		model.ModuleModel{},
		model.LessonModel{},
		model.ExerciseModel{},
		model.AssessmentModel{},
		model.CourseReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
