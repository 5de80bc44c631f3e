// This file is part of GopherJaguar.
//
// GopherJaguar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherJaguar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherJaguar.  If not, see <https://www.gnu.org/licenses/>.

package jagrisc

// the dispatch tables are indexed by the top six bits of the opcode. the
// two variants differ in six slots only.

var gpuTable = [64]func(*Core, uint16){
	(*Core).add, (*Core).addc, (*Core).addq, (*Core).addqt,
	(*Core).sub, (*Core).subc, (*Core).subq, (*Core).subqt,
	(*Core).neg, (*Core).and, (*Core).or, (*Core).xor,
	(*Core).not, (*Core).btst, (*Core).bset, (*Core).bclr,
	(*Core).mult, (*Core).imult, (*Core).imultn, (*Core).resmac,
	(*Core).imacn, (*Core).div, (*Core).abs, (*Core).sh,
	(*Core).shlq, (*Core).shrq, (*Core).sha, (*Core).sharq,
	(*Core).ror, (*Core).rorq, (*Core).cmp, (*Core).cmpq,
	(*Core).sat8, (*Core).sat16, (*Core).move, (*Core).moveq,
	(*Core).moveta, (*Core).movefa, (*Core).movei, (*Core).loadb,
	(*Core).loadw, (*Core).load, (*Core).loadp, (*Core).loadr14n,
	(*Core).loadr15n, (*Core).storeb, (*Core).storew, (*Core).store,
	(*Core).storep, (*Core).storer14n, (*Core).storer15n, (*Core).movepc,
	(*Core).jump, (*Core).jr, (*Core).mmult, (*Core).mtoi,
	(*Core).normi, (*Core).nop, (*Core).loadr14r, (*Core).loadr15r,
	(*Core).storer14r, (*Core).storer15r, (*Core).sat24, (*Core).pack,
}

var dspTable = [64]func(*Core, uint16){
	(*Core).add, (*Core).addc, (*Core).addq, (*Core).addqt,
	(*Core).sub, (*Core).subc, (*Core).subq, (*Core).subqt,
	(*Core).neg, (*Core).and, (*Core).or, (*Core).xor,
	(*Core).not, (*Core).btst, (*Core).bset, (*Core).bclr,
	(*Core).mult, (*Core).imult, (*Core).imultn, (*Core).resmac,
	(*Core).imacn, (*Core).div, (*Core).abs, (*Core).sh,
	(*Core).shlq, (*Core).shrq, (*Core).sha, (*Core).sharq,
	(*Core).ror, (*Core).rorq, (*Core).cmp, (*Core).cmpq,
	(*Core).subqmod, (*Core).sat16s, (*Core).move, (*Core).moveq,
	(*Core).moveta, (*Core).movefa, (*Core).movei, (*Core).loadb,
	(*Core).loadw, (*Core).load, (*Core).sat32s, (*Core).loadr14n,
	(*Core).loadr15n, (*Core).storeb, (*Core).storew, (*Core).store,
	(*Core).mirror, (*Core).storer14n, (*Core).storer15n, (*Core).movepc,
	(*Core).jump, (*Core).jr, (*Core).mmult, (*Core).mtoi,
	(*Core).normi, (*Core).nop, (*Core).loadr14r, (*Core).loadr15r,
	(*Core).storer14r, (*Core).storer15r, (*Core).illegal, (*Core).addqmod,
}
