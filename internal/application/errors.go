package application

import "errors"

var (
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrStorageUnavailable = errors.New("attachment storage is not configured")

	ErrDepartmentNotFound       = errors.New("department not found")
	ErrCourseNotFound           = errors.New("course not found")
	ErrCourseDepartmentMismatch = errors.New("course does not belong to the given department")

	ErrFormNotFound       = errors.New("form not found")
	ErrFormInactive       = errors.New("form is not accepting submissions")
	ErrFormNotAvailable   = errors.New("form is not available to your department")
	ErrFormHasSubmissions = errors.New("fields cannot be changed once the form has submissions")

	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrNotStudent          = errors.New("only students can submit forms")
	ErrSlipNotReady        = errors.New("a slip is only available once the submission is approved or rejected")
	ErrAttachmentNotFound  = errors.New("submission has no attachment for that field")
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrEmptyFile           = errors.New("file is empty")
	ErrNotReviewer         = errors.New("only tutors, HODs and principals have a review queue")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)
