package domain_test

import (
	"testing"
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
)

func testActor(id int64, role domain.Role) *domain.Actor {
	return &domain.Actor{
		ID:       id,
		Username: "user",
		Role:     role,
		Active:   true,
	}
}

func testUserTarget(t *testing.T, id int64) *domain.User {
	t.Helper()
	user, err := domain.ReconstructUser(id, "target", "target@example.com", "hashed", "engineer", true)
	if err != nil {
		t.Fatalf("failed to reconstruct user: %v", err)
	}
	return user
}

func testProjectTarget(ownerID int64) *domain.Project {
	return domain.ReconstructProject(10, "project", "", time.Now(), ownerID)
}

func testDefectTarget(t *testing.T, reporterID int64, assigneeID *int64) *domain.Defect {
	t.Helper()
	now := time.Now()
	defect, err := domain.ReconstructDefect(20, "defect", "", "low", "new", now, now, nil, reporterID, assigneeID, 10)
	if err != nil {
		t.Fatalf("failed to reconstruct defect: %v", err)
	}
	return defect
}

func TestPolicyEvaluator_Decide(t *testing.T) {
	assignee := int64(3)

	type args struct {
		actor  *domain.Actor
		action domain.Action
		target domain.Target
	}
	tests := []struct {
		name string
		args args
		want domain.Decision
	}{
		{
			name: "正常系: セルフ登録は未認証でも許可される",
			args: args{actor: nil, action: domain.ActionUserRegister, target: domain.Target{}},
			want: domain.Allow,
		},
		{
			name: "正常系: 自分のプロフィール閲覧は許可される",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionUserViewSelf,
				target: domain.Target{User: testUserTarget(t, 1)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: 他人のプロフィールをセルフ閲覧アクションで参照すると拒否される",
			args: args{
				actor:  testActor(1, domain.RoleEngineer),
				action: domain.ActionUserViewSelf,
				target: domain.Target{User: testUserTarget(t, 2)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: IDによるユーザー閲覧は認証済みなら誰でも許可される",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionUserView,
				target: domain.Target{User: testUserTarget(t, 2)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: 未認証のユーザー閲覧は拒否される",
			args: args{actor: nil, action: domain.ActionUserView, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "異常系: 無効化されたユーザーは認証済みでも拒否される",
			args: args{
				actor:  &domain.Actor{ID: 1, Role: domain.RoleAdmin, Active: false},
				action: domain.ActionUserView,
				target: domain.Target{},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: マネージャーはユーザー一覧を閲覧できる",
			args: args{actor: testActor(1, domain.RoleManager), action: domain.ActionUserList, target: domain.Target{}},
			want: domain.Allow,
		},
		{
			name: "異常系: エンジニアはユーザー一覧を閲覧できない",
			args: args{actor: testActor(1, domain.RoleEngineer), action: domain.ActionUserList, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "正常系: 管理者はロールを変更できる",
			args: args{
				actor:  testActor(1, domain.RoleAdmin),
				action: domain.ActionUserChangeRole,
				target: domain.Target{User: testUserTarget(t, 2)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: オブザーバーはロールを変更できない",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionUserChangeRole,
				target: domain.Target{User: testUserTarget(t, 2)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: 自分自身のためのプロジェクト作成は許可される",
			args: args{
				actor:  testActor(1, domain.RoleEngineer),
				action: domain.ActionProjectCreate,
				target: domain.Target{User: testUserTarget(t, 1)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: エンジニアは他人のためのプロジェクトを作成できない",
			args: args{
				actor:  testActor(1, domain.RoleEngineer),
				action: domain.ActionProjectCreate,
				target: domain.Target{User: testUserTarget(t, 2)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: マネージャーは他人のためのプロジェクトを作成できる",
			args: args{
				actor:  testActor(1, domain.RoleManager),
				action: domain.ActionProjectCreate,
				target: domain.Target{User: testUserTarget(t, 2)},
			},
			want: domain.Allow,
		},
		{
			name: "正常系: プロジェクト所有者は更新できる",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionProjectUpdate,
				target: domain.Target{Project: testProjectTarget(1)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: 所有者でないエンジニアはプロジェクトを更新できない",
			args: args{
				actor:  testActor(1, domain.RoleEngineer),
				action: domain.ActionProjectUpdate,
				target: domain.Target{Project: testProjectTarget(2)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: マネージャーは他人のプロジェクトを削除できる",
			args: args{
				actor:  testActor(1, domain.RoleManager),
				action: domain.ActionProjectDelete,
				target: domain.Target{Project: testProjectTarget(2)},
			},
			want: domain.Allow,
		},
		{
			name: "正常系: プロジェクト所有者のオブザーバーは配下に欠陥を作成できる",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionDefectCreateInProject,
				target: domain.Target{Project: testProjectTarget(1)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: 所有者でないオブザーバーはプロジェクト配下に欠陥を作成できない",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionDefectCreateInProject,
				target: domain.Target{Project: testProjectTarget(2)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: エンジニアは任意のプロジェクト配下に欠陥を作成できる",
			args: args{
				actor:  testActor(1, domain.RoleEngineer),
				action: domain.ActionDefectCreateInProject,
				target: domain.Target{Project: testProjectTarget(2)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: オブザーバーはプロジェクト指定なしで欠陥を作成できない",
			args: args{actor: testActor(1, domain.RoleObserver), action: domain.ActionDefectCreate, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "正常系: エンジニアはプロジェクト指定なしで欠陥を作成できる",
			args: args{actor: testActor(1, domain.RoleEngineer), action: domain.ActionDefectCreate, target: domain.Target{}},
			want: domain.Allow,
		},
		{
			name: "正常系: 報告者は欠陥を更新できる",
			args: args{
				actor:  testActor(2, domain.RoleObserver),
				action: domain.ActionDefectUpdate,
				target: domain.Target{Defect: testDefectTarget(t, 2, &assignee)},
			},
			want: domain.Allow,
		},
		{
			name: "正常系: 担当者は欠陥を更新できる",
			args: args{
				actor:  testActor(3, domain.RoleEngineer),
				action: domain.ActionDefectUpdate,
				target: domain.Target{Defect: testDefectTarget(t, 2, &assignee)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: 報告者でも担当者でもないエンジニアは欠陥を更新できない",
			args: args{
				actor:  testActor(4, domain.RoleEngineer),
				action: domain.ActionDefectUpdate,
				target: domain.Target{Defect: testDefectTarget(t, 2, &assignee)},
			},
			want: domain.Deny,
		},
		{
			name: "異常系: 担当者は欠陥を削除できない",
			args: args{
				actor:  testActor(3, domain.RoleEngineer),
				action: domain.ActionDefectDelete,
				target: domain.Target{Defect: testDefectTarget(t, 2, &assignee)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: 報告者は欠陥を削除できる",
			args: args{
				actor:  testActor(2, domain.RoleEngineer),
				action: domain.ActionDefectDelete,
				target: domain.Target{Defect: testDefectTarget(t, 2, &assignee)},
			},
			want: domain.Allow,
		},
		{
			name: "正常系: コメント作成は認証済みなら誰でも許可される",
			args: args{
				actor:  testActor(1, domain.RoleObserver),
				action: domain.ActionCommentCreate,
				target: domain.Target{Defect: testDefectTarget(t, 2, nil)},
			},
			want: domain.Allow,
		},
		{
			name: "正常系: コメント作者はコメントを更新できる",
			args: args{
				actor:  testActor(5, domain.RoleObserver),
				action: domain.ActionCommentUpdate,
				target: domain.Target{Comment: domain.ReconstructComment(30, "content", time.Now(), 5, 20)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: 作者でないエンジニアはコメントを削除できない",
			args: args{
				actor:  testActor(6, domain.RoleEngineer),
				action: domain.ActionCommentDelete,
				target: domain.Target{Comment: domain.ReconstructComment(30, "content", time.Now(), 5, 20)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: 管理者は他人のコメントを削除できる",
			args: args{
				actor:  testActor(6, domain.RoleAdmin),
				action: domain.ActionCommentDelete,
				target: domain.Target{Comment: domain.ReconstructComment(30, "content", time.Now(), 5, 20)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: オブザーバーは添付ファイルをアップロードできない",
			args: args{actor: testActor(1, domain.RoleObserver), action: domain.ActionAttachmentUpload, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "正常系: エンジニアは添付ファイルをアップロードできる",
			args: args{actor: testActor(1, domain.RoleEngineer), action: domain.ActionAttachmentUpload, target: domain.Target{}},
			want: domain.Allow,
		},
		{
			name: "正常系: アップロード者は添付ファイルを削除できる",
			args: args{
				actor:  testActor(7, domain.RoleEngineer),
				action: domain.ActionAttachmentDelete,
				target: domain.Target{Attachment: domain.ReconstructAttachment(40, "log.txt", "attachments/20/key/log.txt", time.Now(), 7, 20)},
			},
			want: domain.Allow,
		},
		{
			name: "異常系: アップロード者でないエンジニアは添付ファイルを削除できない",
			args: args{
				actor:  testActor(8, domain.RoleEngineer),
				action: domain.ActionAttachmentDelete,
				target: domain.Target{Attachment: domain.ReconstructAttachment(40, "log.txt", "attachments/20/key/log.txt", time.Now(), 7, 20)},
			},
			want: domain.Deny,
		},
		{
			name: "正常系: オブザーバーはレポートをエクスポートできる",
			args: args{actor: testActor(1, domain.RoleObserver), action: domain.ActionReportExport, target: domain.Target{}},
			want: domain.Allow,
		},
		{
			name: "異常系: エンジニアはレポートをエクスポートできない",
			args: args{actor: testActor(1, domain.RoleEngineer), action: domain.ActionReportExport, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "異常系: 未知のアクションは拒否される",
			args: args{actor: testActor(1, domain.RoleAdmin), action: domain.Action{}, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "異常系: 所有者ルールのアクションで対象スナップショットが欠けている場合、ロールが一致しなければ拒否される",
			args: args{actor: testActor(1, domain.RoleEngineer), action: domain.ActionProjectUpdate, target: domain.Target{}},
			want: domain.Deny,
		},
		{
			name: "正常系: 対象スナップショットが欠けていてもロールが一致すれば許可される",
			args: args{actor: testActor(1, domain.RoleAdmin), action: domain.ActionProjectUpdate, target: domain.Target{}},
			want: domain.Allow,
		},
	}

	evaluator := domain.NewPolicyEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluator.Decide(tt.args.actor, tt.args.action, tt.args.target)
			if got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}
