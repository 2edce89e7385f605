package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/defectrack/internal/domain"
)

func TestParseRole(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name    string
		args    args
		want    domain.Role
		wantErr error
	}{
		{
			name:    "正常系: engineerが指定された場合、RoleEngineerが返る",
			args:    args{s: "engineer"},
			want:    domain.RoleEngineer,
			wantErr: nil,
		},
		{
			name:    "正常系: managerが指定された場合、RoleManagerが返る",
			args:    args{s: "manager"},
			want:    domain.RoleManager,
			wantErr: nil,
		},
		{
			name:    "正常系: observerが指定された場合、RoleObserverが返る",
			args:    args{s: "observer"},
			want:    domain.RoleObserver,
			wantErr: nil,
		},
		{
			name:    "正常系: adminが指定された場合、RoleAdminが返る",
			args:    args{s: "admin"},
			want:    domain.RoleAdmin,
			wantErr: nil,
		},
		{
			name:    "異常系: 不正な値が指定された場合、ErrInvalidRoleが返る",
			args:    args{s: "superuser"},
			want:    domain.Role{},
			wantErr: domain.ErrInvalidRole,
		},
		{
			name:    "異常系: 空文字が指定された場合、ErrInvalidRoleが返る",
			args:    args{s: ""},
			want:    domain.Role{},
			wantErr: domain.ErrInvalidRole,
		},
		{
			name:    "異常系: 大文字のADMINが指定された場合、ErrInvalidRoleが返る",
			args:    args{s: "ADMIN"},
			want:    domain.Role{},
			wantErr: domain.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseRole(tt.args.s)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("want error %v, but got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseRole() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("want no error, but got %v", err)
				}
			}

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(domain.Role{})); diff != "" {
				t.Errorf("ParseRole() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRole_In(t *testing.T) {
	tests := []struct {
		name  string
		role  domain.Role
		roles []domain.Role
		want  bool
	}{
		{
			name:  "正常系: 集合に含まれる場合、trueが返る",
			role:  domain.RoleManager,
			roles: []domain.Role{domain.RoleManager, domain.RoleAdmin},
			want:  true,
		},
		{
			name:  "正常系: 集合に含まれない場合、falseが返る",
			role:  domain.RoleObserver,
			roles: []domain.Role{domain.RoleManager, domain.RoleAdmin},
			want:  false,
		},
		{
			name:  "正常系: 空の集合の場合、falseが返る",
			role:  domain.RoleAdmin,
			roles: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.role.In(tt.roles...)
			if got != tt.want {
				t.Errorf("Role.In() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultRole(t *testing.T) {
	if domain.DefaultRole != domain.RoleObserver {
		t.Errorf("DefaultRole = %v, want %v", domain.DefaultRole, domain.RoleObserver)
	}
}
