package domain

// Target は認可判定時に参照する対象リソースのスナップショットです。
// アクションに応じて必要なフィールドのみ設定されます。リソースの
// 存在確認は呼び出し側の責務で、404判定は常に認可判定に先行します。
type Target struct {
	User       *User
	Project    *Project
	Defect     *Defect
	Comment    *Comment
	Attachment *Attachment
}

type Decision struct {
	allowed bool
}

var (
	Allow = Decision{allowed: true}
	Deny  = Decision{allowed: false}
)

func (d Decision) Allowed() bool {
	return d.allowed
}

// PolicyEvaluator は (操作者, アクション, 対象) から ALLOW/DENY を決定します。
// 純粋関数であり、I/O を行いません。
type PolicyEvaluator interface {
	Decide(actor *Actor, action Action, target Target) Decision
}

type policyEvaluatorImpl struct{}

func NewPolicyEvaluator() PolicyEvaluator {
	return &policyEvaluatorImpl{}
}

type ownerFunc func(target Target) []int64

// rule は1アクションの許可条件です。public、anyActor、所有者一致、
// ロール一致のいずれかを満たせば ALLOW、いずれも満たさなければ DENY です。
type rule struct {
	// public は未認証でも許可するアクション
	public bool
	// anyActor は認証済みであれば誰でも許可するアクション
	anyActor bool
	// owners は対象リソースの所有者に許可を与える
	owners ownerFunc
	// roles はロールで許可を与える
	roles []Role
}

var policyRules = map[Action]rule{
	ActionUserRegister:   {public: true},
	ActionUserCreate:     {roles: []Role{RoleManager, RoleAdmin}},
	ActionUserViewSelf:   {owners: targetUserID},
	ActionUserView:       {anyActor: true},
	ActionUserList:       {roles: []Role{RoleManager, RoleAdmin}},
	ActionUserChangeRole: {roles: []Role{RoleManager, RoleAdmin}},

	ActionProjectCreate: {owners: targetUserID, roles: []Role{RoleManager, RoleAdmin}},
	ActionProjectList:   {anyActor: true},
	ActionProjectView:   {anyActor: true},
	ActionProjectUpdate: {owners: projectOwner, roles: []Role{RoleManager, RoleAdmin}},
	ActionProjectDelete: {owners: projectOwner, roles: []Role{RoleManager, RoleAdmin}},

	ActionDefectCreateInProject: {owners: projectOwner, roles: []Role{RoleManager, RoleEngineer, RoleAdmin}},
	ActionDefectCreate:          {roles: []Role{RoleManager, RoleEngineer, RoleAdmin}},
	ActionDefectList:            {anyActor: true},
	ActionDefectView:            {anyActor: true},
	ActionDefectUpdate:          {owners: defectReporterAndAssignee, roles: []Role{RoleManager, RoleAdmin}},
	ActionDefectDelete:          {owners: defectReporter, roles: []Role{RoleManager, RoleAdmin}},

	ActionCommentCreate: {anyActor: true},
	ActionCommentList:   {anyActor: true},
	ActionCommentUpdate: {owners: commentAuthor, roles: []Role{RoleManager, RoleAdmin}},
	ActionCommentDelete: {owners: commentAuthor, roles: []Role{RoleManager, RoleAdmin}},

	ActionAttachmentUpload:   {roles: []Role{RoleManager, RoleEngineer, RoleAdmin}},
	ActionAttachmentList:     {anyActor: true},
	ActionAttachmentDownload: {anyActor: true},
	ActionAttachmentDelete:   {owners: attachmentUploader, roles: []Role{RoleManager, RoleAdmin}},

	ActionReportExport: {roles: []Role{RoleManager, RoleObserver, RoleAdmin}},
}

// Decide は先頭から許可条件を評価し、最初に一致した条件で ALLOW を返します。
// 一致する条件が1つもなければ DENY です。
func (e *policyEvaluatorImpl) Decide(actor *Actor, action Action, target Target) Decision {
	r, ok := policyRules[action]
	if !ok {
		return Deny
	}

	if r.public {
		return Allow
	}

	if actor == nil || !actor.Active {
		return Deny
	}

	if r.anyActor {
		return Allow
	}

	if r.owners != nil {
		for _, ownerID := range r.owners(target) {
			if ownerID == actor.ID {
				return Allow
			}
		}
	}

	if actor.Role.In(r.roles...) {
		return Allow
	}

	return Deny
}

func targetUserID(target Target) []int64 {
	if target.User == nil {
		return nil
	}
	return []int64{target.User.ID()}
}

func projectOwner(target Target) []int64 {
	if target.Project == nil {
		return nil
	}
	return []int64{target.Project.OwnerID()}
}

func defectReporter(target Target) []int64 {
	if target.Defect == nil {
		return nil
	}
	return []int64{target.Defect.ReporterID()}
}

func defectReporterAndAssignee(target Target) []int64 {
	if target.Defect == nil {
		return nil
	}
	owners := []int64{target.Defect.ReporterID()}
	if assigneeID := target.Defect.AssigneeID(); assigneeID != nil {
		owners = append(owners, *assigneeID)
	}
	return owners
}

func commentAuthor(target Target) []int64 {
	if target.Comment == nil {
		return nil
	}
	return []int64{target.Comment.AuthorID()}
}

func attachmentUploader(target Target) []int64 {
	if target.Attachment == nil {
		return nil
	}
	return []int64{target.Attachment.UploaderID()}
}
