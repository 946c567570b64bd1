package custody

import "github.com/jjquek/custodia/common"

// roles tracks the two capability sets of the custody system. The sets
// are not exclusive in structure, but the deposit paths reject
// operators acting as depositors.
type roles struct {
	operators  map[common.Address]struct{}
	depositors map[common.Address]struct{}
}

func newRoles() roles {
	return roles{
		operators:  map[common.Address]struct{}{},
		depositors: map[common.Address]struct{}{},
	}
}

func (r *roles) isOperator(account common.Address) bool {
	_, found := r.operators[account]
	return found
}

func (r *roles) isDepositor(account common.Address) bool {
	_, found := r.depositors[account]
	return found
}

// enrollDepositor adds an account to the depositor set and reports
// whether it was newly added.
func (r *roles) enrollDepositor(account common.Address) bool {
	if _, found := r.depositors[account]; found {
		return false
	}
	r.depositors[account] = struct{}{}
	return true
}
