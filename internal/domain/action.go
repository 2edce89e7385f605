package domain

import "errors"

var ErrInvalidAction = errors.New("invalid action")

// Action は認可判定の対象となる操作です。エンドポイントごとに
// 1つのアクションが対応します。
type Action struct {
	value string
}

var (
	ActionUserRegister   = Action{value: "user.register"}
	ActionUserCreate     = Action{value: "user.create"}
	ActionUserViewSelf   = Action{value: "user.view_self"}
	ActionUserView       = Action{value: "user.view"}
	ActionUserList       = Action{value: "user.list"}
	ActionUserChangeRole = Action{value: "user.change_role"}

	ActionProjectCreate = Action{value: "project.create"}
	ActionProjectList   = Action{value: "project.list"}
	ActionProjectView   = Action{value: "project.view"}
	ActionProjectUpdate = Action{value: "project.update"}
	ActionProjectDelete = Action{value: "project.delete"}

	ActionDefectCreateInProject = Action{value: "defect.create_in_project"}
	ActionDefectCreate          = Action{value: "defect.create"}
	ActionDefectList            = Action{value: "defect.list"}
	ActionDefectView            = Action{value: "defect.view"}
	ActionDefectUpdate          = Action{value: "defect.update"}
	ActionDefectDelete          = Action{value: "defect.delete"}

	ActionCommentCreate = Action{value: "comment.create"}
	ActionCommentList   = Action{value: "comment.list"}
	ActionCommentUpdate = Action{value: "comment.update"}
	ActionCommentDelete = Action{value: "comment.delete"}

	ActionAttachmentUpload   = Action{value: "attachment.upload"}
	ActionAttachmentList     = Action{value: "attachment.list"}
	ActionAttachmentDownload = Action{value: "attachment.download"}
	ActionAttachmentDelete   = Action{value: "attachment.delete"}

	ActionReportExport = Action{value: "report.export"}
)

func (a Action) String() string {
	return a.value
}

func (a Action) IsZero() bool {
	return a.value == ""
}
